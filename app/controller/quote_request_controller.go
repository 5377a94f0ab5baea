package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trailercraft-co/models"
	"trailercraft-co/repository"
	"trailercraft-co/service"
)

// QuoteRequestController handles admin HTTP requests for submitted quote requests
type QuoteRequestController struct {
	repository repository.QuoteRequestRepositoryInterface
	quotes     *service.QuoteService
}

// NewQuoteRequestController creates a new QuoteRequestController
func NewQuoteRequestController(repo repository.QuoteRequestRepositoryInterface, quotes *service.QuoteService) *QuoteRequestController {
	return &QuoteRequestController{
		repository: repo,
		quotes:     quotes,
	}
}

// List handles GET /admin/quote-requests
func (c *QuoteRequestController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ List: Error listing quote requests: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list quote requests: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.QuoteRequestListResponse{QuoteRequests: items})
}

// Render handles GET /admin/quote-requests/render?id={id}
// Serves the quote HTML the PDF printer navigates to.
func (c *QuoteRequestController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id parameter", http.StatusBadRequest)
		return
	}

	html, err := c.quotes.RenderQuoteHTML(r.Context(), id)
	if err != nil {
		log.Printf("❌ Render: Error rendering quote %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to render quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// ByID routes /admin/quote-requests/{id}[/pdf]
func (c *QuoteRequestController) ByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/quote-requests/")
	wantPDF := false
	if strings.HasSuffix(path, "/pdf") {
		wantPDF = true
		path = strings.TrimSuffix(path, "/pdf")
	}

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		http.Error(w, "invalid quote request id", http.StatusBadRequest)
		return
	}

	if wantPDF {
		pdf, err := c.quotes.GeneratePDF(r.Context(), id)
		if err != nil {
			log.Printf("❌ ByID: Error generating PDF for quote %d: %v", id, err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trailercraft-quote-%d.pdf"`, id))
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
		return
	}

	quote, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("❌ ByID: Error fetching quote %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch quote request: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
