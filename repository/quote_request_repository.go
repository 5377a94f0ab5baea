package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"trailercraft-co/db"
	"trailercraft-co/models"
)

// QuoteRequestRepository handles database operations for submitted quote requests.
// A quote request is the flattened final-step payload: every configuration field
// plus the pricing breakdown it was quoted at.
type QuoteRequestRepository struct{}

// NewQuoteRequestRepository creates a new QuoteRequestRepository
func NewQuoteRequestRepository() *QuoteRequestRepository {
	return &QuoteRequestRepository{}
}

// Ensure QuoteRequestRepository implements QuoteRequestRepositoryInterface
var _ QuoteRequestRepositoryInterface = (*QuoteRequestRepository)(nil)

// Insert persists a submitted configuration with its pricing breakdown
func (r *QuoteRequestRepository) Insert(ctx context.Context, submission *models.QuoteSubmission) (*models.QuoteRequest, error) {
	log.Printf("📦 Insert: Persisting quote request for session=%s, total=%d", submission.SessionID, submission.Pricing.Total)

	cfg := submission.Configuration

	attachmentsJSON, err := json.Marshal(submission.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attachments: %w", err)
	}

	query := `
		INSERT INTO quote_requests (
			session_id,
			trailer_size, porch_configuration,
			range_hood, fire_suppression_system, flat_top_griddle, charbroiler,
			deep_fryer, cook_range, steam_well, warming_cabinet, refrigeration,
			exterior_color, interior_finish,
			budget, need_financing,
			first_name, last_name, email, phone_number, zipcode, address, payment_methods,
			additional_info,
			base_price, porch_price, equipment_price, customization_price,
			subtotal, tax, total, monthly_payment,
			attachments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)
		RETURNING id, created_at
	`

	quote := &models.QuoteRequest{
		SessionID:     submission.SessionID,
		Configuration: cfg,
		Pricing:       submission.Pricing,
		Attachments:   submission.Attachments,
	}

	err = db.DB.QueryRowContext(ctx, query,
		submission.SessionID,
		cfg.TrailerSize, cfg.PorchConfiguration,
		cfg.RangeHood, cfg.FireSuppressionSystem, cfg.FlatTopGriddle, cfg.Charbroiler,
		cfg.DeepFryer, cfg.Range, cfg.SteamWell, cfg.WarmingCabinet, strings.Join(cfg.Refrigeration, ","),
		cfg.ExteriorColor, cfg.InteriorFinish,
		cfg.Budget, cfg.NeedFinancing,
		cfg.FirstName, cfg.LastName, cfg.Email, cfg.PhoneNumber, cfg.Zipcode, cfg.Address, cfg.PaymentMethods,
		sql.NullString{String: cfg.AdditionalInfo, Valid: cfg.AdditionalInfo != ""},
		submission.Pricing.BasePrice, submission.Pricing.PorchPrice,
		submission.Pricing.EquipmentPrice, submission.Pricing.CustomizationPrice,
		submission.Pricing.Subtotal, submission.Pricing.Tax,
		submission.Pricing.Total, submission.Pricing.MonthlyPayment,
		string(attachmentsJSON),
	).Scan(&quote.ID, &quote.CreatedAt)

	if err != nil {
		log.Printf("❌ Insert: Error persisting quote request: %v", err)
		return nil, fmt.Errorf("failed to insert quote request: %w", err)
	}

	log.Printf("✅ Insert: Successfully persisted quote request id=%d", quote.ID)
	return quote, nil
}

// GetByID retrieves a single quote request with its full configuration and pricing
func (r *QuoteRequestRepository) GetByID(ctx context.Context, id int64) (*models.QuoteRequest, error) {
	query := `
		SELECT id, session_id,
		       trailer_size, porch_configuration,
		       range_hood, fire_suppression_system, flat_top_griddle, charbroiler,
		       deep_fryer, cook_range, steam_well, warming_cabinet, refrigeration,
		       exterior_color, interior_finish,
		       budget, need_financing,
		       first_name, last_name, email, phone_number, zipcode, address, payment_methods,
		       additional_info,
		       base_price, porch_price, equipment_price, customization_price,
		       subtotal, tax, total, monthly_payment,
		       attachments, pdf_file_id, created_at
		FROM quote_requests
		WHERE id = $1
	`

	var quote models.QuoteRequest
	var refrigeration string
	var additionalInfo, pdfFileID sql.NullString
	var attachmentsJSON string

	cfg := &quote.Configuration
	p := &quote.Pricing

	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&quote.ID, &quote.SessionID,
		&cfg.TrailerSize, &cfg.PorchConfiguration,
		&cfg.RangeHood, &cfg.FireSuppressionSystem, &cfg.FlatTopGriddle, &cfg.Charbroiler,
		&cfg.DeepFryer, &cfg.Range, &cfg.SteamWell, &cfg.WarmingCabinet, &refrigeration,
		&cfg.ExteriorColor, &cfg.InteriorFinish,
		&cfg.Budget, &cfg.NeedFinancing,
		&cfg.FirstName, &cfg.LastName, &cfg.Email, &cfg.PhoneNumber, &cfg.Zipcode, &cfg.Address, &cfg.PaymentMethods,
		&additionalInfo,
		&p.BasePrice, &p.PorchPrice, &p.EquipmentPrice, &p.CustomizationPrice,
		&p.Subtotal, &p.Tax, &p.Total, &p.MonthlyPayment,
		&attachmentsJSON, &pdfFileID, &quote.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quote request not found")
		}
		log.Printf("❌ GetByID: Error fetching quote request %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch quote request: %w", err)
	}

	if refrigeration != "" {
		cfg.Refrigeration = strings.Split(refrigeration, ",")
	} else {
		cfg.Refrigeration = []string{models.OptionNone}
	}
	if additionalInfo.Valid {
		cfg.AdditionalInfo = additionalInfo.String
	}
	if pdfFileID.Valid {
		quote.PDFFileID = pdfFileID.String
	}
	if attachmentsJSON != "" {
		if err := json.Unmarshal([]byte(attachmentsJSON), &quote.Attachments); err != nil {
			log.Printf("⚠️  GetByID: Failed to decode attachments for quote %d: %v", id, err)
		}
	}

	return &quote, nil
}

// List returns all quote requests, newest first
func (r *QuoteRequestRepository) List(ctx context.Context) ([]models.QuoteRequestListItem, error) {
	query := `
		SELECT id, first_name, last_name, email, trailer_size, total, need_financing, created_at
		FROM quote_requests
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error listing quote requests: %v", err)
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	defer rows.Close()

	items := []models.QuoteRequestListItem{}
	for rows.Next() {
		var item models.QuoteRequestListItem
		if err := rows.Scan(
			&item.ID, &item.FirstName, &item.LastName, &item.Email,
			&item.TrailerSize, &item.Total, &item.NeedFinancing, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote request row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// SetPDFFileID records the Drive file ID once the quote PDF has been uploaded
func (r *QuoteRequestRepository) SetPDFFileID(ctx context.Context, id int64, fileID string) error {
	query := `UPDATE quote_requests SET pdf_file_id = $1 WHERE id = $2`
	if _, err := db.DB.ExecContext(ctx, query, fileID, id); err != nil {
		return fmt.Errorf("failed to update pdf_file_id: %w", err)
	}
	log.Printf("✅ SetPDFFileID: Updated quote request %d pdf_file_id to %s", id, fileID)
	return nil
}
