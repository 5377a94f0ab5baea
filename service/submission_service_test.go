package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailercraft-co/models"
)

// fakeQuoteRepo satisfies QuoteRequestRepositoryInterface for submission tests
type fakeQuoteRepo struct {
	insertErr error
	inserted  *models.QuoteSubmission
	nextID    int64
}

func (f *fakeQuoteRepo) Insert(_ context.Context, submission *models.QuoteSubmission) (*models.QuoteRequest, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = submission
	return &models.QuoteRequest{
		ID:            f.nextID,
		SessionID:     submission.SessionID,
		Configuration: submission.Configuration,
		Pricing:       submission.Pricing,
	}, nil
}

func (f *fakeQuoteRepo) GetByID(context.Context, int64) (*models.QuoteRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQuoteRepo) List(context.Context) ([]models.QuoteRequestListItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQuoteRepo) SetPDFFileID(context.Context, int64, string) error {
	return nil
}

// fakeNotify records CRM notifications
type fakeNotify struct {
	err   error
	calls int
	last  *models.QuoteRequest
}

func (f *fakeNotify) NotifyQuoteRequest(_ context.Context, quote *models.QuoteRequest) error {
	f.calls++
	f.last = quote
	return f.err
}

func testSubmission() *models.QuoteSubmission {
	cfg := models.DefaultConfiguration()
	cfg.TrailerSize = "8.5x20"
	return &models.QuoteSubmission{
		SessionID:     "session-1",
		Configuration: cfg,
		Pricing:       models.PricingBreakdown{Subtotal: 48000, Total: 48000, MonthlyPayment: 800},
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeQuoteRepo{nextID: 7}
	notify := &fakeNotify{}
	svc := NewSubmissionService(repo, notify, nil, nil)

	result := svc.Submit(context.Background(), testSubmission())

	assert.True(t, result.Success)
	assert.Equal(t, int64(7), result.QuoteRequestID)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, "8.5x20", repo.inserted.Configuration.TrailerSize)

	require.Equal(t, 1, notify.calls)
	assert.Equal(t, int64(48000), notify.last.Pricing.Total, "CRM sees the same total the customer saw")
}

func TestSubmitRepositoryFailure(t *testing.T) {
	repo := &fakeQuoteRepo{insertErr: errors.New("connection refused")}
	notify := &fakeNotify{}
	svc := NewSubmissionService(repo, notify, nil, nil)

	result := svc.Submit(context.Background(), testSubmission())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, notify.calls, "nothing is announced for an unsaved quote")
}

func TestSubmitNotifyFailureIsNotFatal(t *testing.T) {
	repo := &fakeQuoteRepo{nextID: 9}
	notify := &fakeNotify{err: errors.New("webhook timeout")}
	svc := NewSubmissionService(repo, notify, nil, nil)

	result := svc.Submit(context.Background(), testSubmission())

	assert.True(t, result.Success, "a CRM outage must not fail the customer's submission")
	assert.Equal(t, int64(9), result.QuoteRequestID)
}
