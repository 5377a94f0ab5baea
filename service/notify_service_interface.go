package service

import (
	"context"

	"trailercraft-co/models"
)

// NotifyServiceInterface defines the contract for pushing submitted quote
// requests to the sales CRM
type NotifyServiceInterface interface {
	NotifyQuoteRequest(ctx context.Context, quote *models.QuoteRequest) error
}
