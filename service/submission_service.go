package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"trailercraft-co/configurator"
	"trailercraft-co/models"
	"trailercraft-co/repository"
)

// PDFGenerator is the part of QuoteService the submission flow needs
type PDFGenerator interface {
	GeneratePDF(ctx context.Context, id int64) ([]byte, error)
}

// SubmissionService is the submission collaborator invoked by the configurator
// on the final step. Persisting the quote request is the one operation that can
// fail the submission; the CRM webhook and the PDF archive are best-effort.
type SubmissionService struct {
	repository repository.QuoteRequestRepositoryInterface
	notify     NotifyServiceInterface
	quotes     PDFGenerator          // Optional, nil disables PDF archiving
	drive      DriveServiceInterface // Optional, nil disables Drive upload
}

// NewSubmissionService creates a SubmissionService. quotes and drive may be
// nil when PDF archiving is not configured.
func NewSubmissionService(
	repo repository.QuoteRequestRepositoryInterface,
	notify NotifyServiceInterface,
	quotes PDFGenerator,
	drive DriveServiceInterface,
) *SubmissionService {
	return &SubmissionService{
		repository: repo,
		notify:     notify,
		quotes:     quotes,
		drive:      drive,
	}
}

// Ensure SubmissionService implements configurator.Submitter
var _ configurator.Submitter = (*SubmissionService)(nil)

// Submit persists the flattened payload, notifies the CRM and kicks off the
// quote PDF archive. Called exactly once per final-step submission; the
// configurator does not retry on failure.
func (s *SubmissionService) Submit(ctx context.Context, submission *models.QuoteSubmission) models.SubmissionResult {
	quote, err := s.repository.Insert(ctx, submission)
	if err != nil {
		log.Printf("❌ Submit: Failed to persist quote request: %v", err)
		return models.SubmissionResult{
			Success: false,
			Error:   "We couldn't save your quote request. Please try again.",
		}
	}

	if err := s.notify.NotifyQuoteRequest(ctx, quote); err != nil {
		// The quote request is already saved; a CRM outage shouldn't fail the
		// customer's submission.
		log.Printf("⚠️  Submit: CRM notification failed for quote %d: %v", quote.ID, err)
	}

	if s.quotes != nil && s.drive != nil {
		go s.archiveQuotePDF(quote.ID)
	}

	log.Printf("✅ Submit: Quote request %d submitted (total=%d)", quote.ID, submission.Pricing.Total)
	return models.SubmissionResult{
		Success:        true,
		QuoteRequestID: quote.ID,
	}
}

// archiveQuotePDF generates the quote PDF and uploads it to the shared Drive
// folder. Best-effort: failures are logged, never surfaced to the customer.
func (s *SubmissionService) archiveQuotePDF(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pdf, err := s.quotes.GeneratePDF(ctx, id)
	if err != nil {
		log.Printf("⚠️  archiveQuotePDF: Failed to generate PDF for quote %d: %v", id, err)
		return
	}

	fileName := fmt.Sprintf("trailercraft-quote-%d.pdf", id)
	fileID, err := s.drive.UploadQuotePDF(ctx, fileName, pdf)
	if err != nil {
		log.Printf("⚠️  archiveQuotePDF: Failed to upload PDF for quote %d: %v", id, err)
		return
	}

	if err := s.repository.SetPDFFileID(ctx, id, fileID); err != nil {
		log.Printf("⚠️  archiveQuotePDF: Failed to record Drive file ID for quote %d: %v", id, err)
	}
}
