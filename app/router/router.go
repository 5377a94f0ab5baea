package router

import (
	"net/http"

	"trailercraft-co/app/controller"
)

type Controllers struct {
	Configurator *controller.ConfiguratorController
	QuoteRequest *controller.QuoteRequestController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Option catalogs
	http.HandleFunc("/api/configurator/options", controllers.Configurator.GetOptions)

	// Configurator sessions
	http.HandleFunc("/api/configurator/sessions", controllers.Configurator.CreateSession)

	// Session state and actions: GET/DELETE /{id}, PATCH /{id}/config,
	// POST /{id}/next|previous|goto|reset|refrigeration|attachments
	http.HandleFunc("/api/configurator/sessions/", controllers.Configurator.SessionAction)

	// Admin: submitted quote requests
	http.HandleFunc("/admin/quote-requests", controllers.QuoteRequest.List)

	// Quote HTML for the PDF printer
	http.HandleFunc("/admin/quote-requests/render", controllers.QuoteRequest.Render)

	// Quote request by ID - handles both the JSON view and /pdf download
	http.HandleFunc("/admin/quote-requests/", controllers.QuoteRequest.ByID)
}
