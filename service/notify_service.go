package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"resty.dev/v3"

	"trailercraft-co/models"
)

// NotifyService posts submitted quote requests to the sales team's CRM webhook.
// The webhook receives the same flattened payload that was persisted, so the
// CRM total always matches the quote the customer saw.
type NotifyService struct {
	client     *resty.Client
	webhookURL string
}

// NewNotifyService creates a NotifyService. An empty webhookURL disables
// notifications without erroring, so local development needs no CRM.
func NewNotifyService(webhookURL string, timeout time.Duration) *NotifyService {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &NotifyService{
		client:     client,
		webhookURL: webhookURL,
	}
}

// Ensure NotifyService implements NotifyServiceInterface
var _ NotifyServiceInterface = (*NotifyService)(nil)

// NotifyQuoteRequest pushes one quote request to the CRM webhook
func (s *NotifyService) NotifyQuoteRequest(ctx context.Context, quote *models.QuoteRequest) error {
	if s.webhookURL == "" {
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(quote).
		Post(s.webhookURL)
	if err != nil {
		return fmt.Errorf("failed to post quote request to CRM: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("CRM webhook returned status %d", resp.StatusCode())
	}

	log.Printf("✅ NotifyQuoteRequest: Pushed quote request %d to CRM", quote.ID)
	return nil
}
