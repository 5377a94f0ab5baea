package repository

import (
	"context"

	"trailercraft-co/models"
)

// QuoteRequestRepositoryInterface defines the contract for quote request persistence
type QuoteRequestRepositoryInterface interface {
	Insert(ctx context.Context, submission *models.QuoteSubmission) (*models.QuoteRequest, error)
	GetByID(ctx context.Context, id int64) (*models.QuoteRequest, error)
	List(ctx context.Context) ([]models.QuoteRequestListItem, error)
	SetPDFFileID(ctx context.Context, id int64, fileID string) error
}
