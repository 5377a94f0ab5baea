package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"trailercraft-co/catalog"
	"trailercraft-co/models"
	"trailercraft-co/repository"
	"trailercraft-co/utils"
)

// QuoteService renders a submitted quote request as a printable document. The
// HTML view renders the stored pricing breakdown verbatim; nothing is
// recomputed here, so the PDF total always matches what the customer saw.
type QuoteService struct {
	repository repository.QuoteRequestRepositoryInterface
	catalog    *catalog.Catalog
	baseURL    string // Base URL for the render endpoint (e.g., "http://localhost:8080")
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(repo repository.QuoteRequestRepositoryInterface, cat *catalog.Catalog, baseURL string) *QuoteService {
	return &QuoteService{
		repository: repo,
		catalog:    cat,
		baseURL:    baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// quoteLine is one labeled row of the quote document
type quoteLine struct {
	Label string
	Value string
	Price string
}

// RenderQuoteHTML renders the quote HTML template for a persisted quote request
func (s *QuoteService) RenderQuoteHTML(ctx context.Context, id int64) (string, error) {
	quote, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	cfg := quote.Configuration
	p := quote.Pricing

	equipment := []quoteLine{}
	addEquipment := func(category, value string) {
		if value == "" || value == models.OptionNone {
			return
		}
		equipment = append(equipment, quoteLine{
			Label: s.catalog.Label(category, value),
			Price: utils.FormatUSD(s.catalog.LookupPrice(category, value)),
		})
	}
	addEquipment(catalog.CategoryRangeHood, cfg.RangeHood)
	addEquipment(catalog.CategoryFireSuppression, cfg.FireSuppressionSystem)
	addEquipment(catalog.CategoryFlatTopGriddle, cfg.FlatTopGriddle)
	addEquipment(catalog.CategoryCharbroiler, cfg.Charbroiler)
	addEquipment(catalog.CategoryDeepFryer, cfg.DeepFryer)
	addEquipment(catalog.CategoryRange, cfg.Range)
	addEquipment(catalog.CategorySteamWell, cfg.SteamWell)
	addEquipment(catalog.CategoryWarmingCabinet, cfg.WarmingCabinet)
	for _, value := range cfg.Refrigeration {
		addEquipment(catalog.CategoryRefrigeration, value)
	}

	templateData := struct {
		Quote              *models.QuoteRequest
		TrailerSize        string
		Porch              string
		ExteriorColor      string
		InteriorFinish     string
		Equipment          []quoteLine
		BasePrice          string
		PorchPrice         string
		EquipmentPrice     string
		CustomizationPrice string
		Subtotal           string
		Tax                string
		Total              string
		MonthlyPayment     string
		HasTax             bool
		GeneratedAt        string
	}{
		Quote:              quote,
		TrailerSize:        s.catalog.Label(catalog.CategoryTrailerSize, cfg.TrailerSize),
		Porch:              s.catalog.Label(catalog.CategoryPorch, cfg.PorchConfiguration),
		ExteriorColor:      s.catalog.Label(catalog.CategoryExteriorColor, cfg.ExteriorColor),
		InteriorFinish:     s.catalog.Label(catalog.CategoryInteriorFinish, cfg.InteriorFinish),
		Equipment:          equipment,
		BasePrice:          utils.FormatUSD(p.BasePrice),
		PorchPrice:         utils.FormatUSD(p.PorchPrice),
		EquipmentPrice:     utils.FormatUSD(p.EquipmentPrice),
		CustomizationPrice: utils.FormatUSD(p.CustomizationPrice),
		Subtotal:           utils.FormatUSD(p.Subtotal),
		Tax:                utils.FormatUSD(p.Tax),
		Total:              utils.FormatUSD(p.Total),
		MonthlyPayment:     utils.FormatUSD(p.MonthlyPayment),
		HasTax:             p.Tax != 0,
		GeneratedAt:        time.Now().Format("January 2, 2006"),
	}

	templatePath := filepath.Join("templates", "quote.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse quote template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to render quote template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates a quote PDF using chromedp
// Requires Chrome or Chromium to be installed
func (s *QuoteService) GeneratePDF(ctx context.Context, id int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/quote-requests/render?id=%d", s.baseURL, id)
	log.Printf("📄 GeneratePDF: Rendering quote %d from %s", id, renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // 210mm x 297mm at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// US Letter, margins handled by the template CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	log.Printf("✅ GeneratePDF: Generated quote PDF for request %d (%d bytes)", id, len(pdfBuf))
	return pdfBuf, nil
}
