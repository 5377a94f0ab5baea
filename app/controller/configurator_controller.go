package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"trailercraft-co/catalog"
	"trailercraft-co/configurator"
	"trailercraft-co/models"
	"trailercraft-co/service"
)

// ConfiguratorController handles HTTP requests for the trailer configurator wizard
type ConfiguratorController struct {
	store       *configurator.Store
	catalog     *catalog.Catalog
	attachments *service.AttachmentService
	maxUpload   int64
}

// NewConfiguratorController creates a new ConfiguratorController
func NewConfiguratorController(
	store *configurator.Store,
	cat *catalog.Catalog,
	attachments *service.AttachmentService,
	maxUpload int64,
) *ConfiguratorController {
	return &ConfiguratorController{
		store:       store,
		catalog:     cat,
		attachments: attachments,
		maxUpload:   maxUpload,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}

// GetOptions handles GET /api/configurator/options
// Returns every option catalog in wizard order
func (c *ConfiguratorController) GetOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := models.OptionsResponse{}
	for _, category := range catalog.Categories {
		resp.Categories = append(resp.Categories, models.OptionCategoryResponse{
			Category: category,
			Options:  c.catalog.Get(category),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateSession handles POST /api/configurator/sessions
// Starts a new configurator session at step 1 with default selections.
// Example response: the full session view-model including sessionId.
func (c *ConfiguratorController) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := c.store.Create()
	log.Printf("✅ CreateSession: Started configurator session %s", session.ID())
	writeJSON(w, http.StatusOK, session.View())
}

// SessionAction routes /api/configurator/sessions/{id}[/action]
func (c *ConfiguratorController) SessionAction(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/configurator/sessions/")
	if path == "" {
		http.Error(w, "session id parameter is required", http.StatusBadRequest)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	sessionID := parts[0]
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	session, ok := c.store.Get(sessionID)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch action {
	case "":
		c.handleSession(w, r, session)
	case "config":
		c.handleUpdateConfig(w, r, session)
	case "next":
		c.handleNext(w, r, session)
	case "previous":
		c.handlePrevious(w, r, session)
	case "goto":
		c.handleGoTo(w, r, session)
	case "reset":
		c.handleReset(w, r, session)
	case "refrigeration":
		c.handleToggleRefrigeration(w, r, session)
	case "attachments":
		c.handleUploadAttachment(w, r, session)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// handleSession handles GET/DELETE /api/configurator/sessions/{id}
func (c *ConfiguratorController) handleSession(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, session.View())
	case http.MethodDelete:
		c.store.Delete(session.ID())
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleUpdateConfig handles PATCH /api/configurator/sessions/{id}/config
// Body is a typed partial of the configuration; unknown keys are rejected.
// Example request: {"trailerSize": "8.5x20", "porchConfiguration": "6ft"}
func (c *ConfiguratorController) handleUpdateConfig(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPatch && r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	defer r.Body.Close()

	var update models.ConfigurationUpdate
	if err := decoder.Decode(&update); err != nil {
		log.Printf("❌ UpdateConfig: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	session.UpdateConfig(&update)
	writeJSON(w, http.StatusOK, session.View())
}

// nextResponse carries the view-model plus the submission result when the
// final step submitted
type nextResponse struct {
	models.SessionView
	Submission *models.SubmissionResult `json:"submission,omitempty"`
}

// handleNext handles POST /api/configurator/sessions/{id}/next
// On steps 1-4 this advances when the current step is valid. On step 5 it
// submits the quote request; the submission result rides along in the response.
func (c *ConfiguratorController) handleNext(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := session.Next(r.Context())
	writeJSON(w, http.StatusOK, nextResponse{
		SessionView: session.View(),
		Submission:  result,
	})
}

// handlePrevious handles POST /api/configurator/sessions/{id}/previous
func (c *ConfiguratorController) handlePrevious(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session.Previous()
	writeJSON(w, http.StatusOK, session.View())
}

// handleGoTo handles POST /api/configurator/sessions/{id}/goto
// Example request: {"step": 3}
// An unreachable step is silently refused; the response reflects the
// unchanged current step.
func (c *ConfiguratorController) handleGoTo(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Step int `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	session.GoTo(req.Step)
	writeJSON(w, http.StatusOK, session.View())
}

// handleReset handles POST /api/configurator/sessions/{id}/reset
func (c *ConfiguratorController) handleReset(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session.Reset()
	writeJSON(w, http.StatusOK, session.View())
}

// handleToggleRefrigeration handles POST /api/configurator/sessions/{id}/refrigeration
// Example request: {"value": "reach-in-fridge"}
func (c *ConfiguratorController) handleToggleRefrigeration(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Value == "" {
		http.Error(w, "value is required", http.StatusBadRequest)
		return
	}

	session.ToggleRefrigeration(req.Value)
	writeJSON(w, http.StatusOK, session.View())
}

// handleUploadAttachment handles POST /api/configurator/sessions/{id}/attachments
// Multipart upload of an inspiration photo; the stored copy is optimized JPEG.
func (c *ConfiguratorController) handleUploadAttachment(w http.ResponseWriter, r *http.Request, session *configurator.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(c.maxUpload); err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, c.maxUpload))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	attachment, err := c.attachments.SaveAttachment(session.ID(), header.Filename, data)
	if err != nil {
		log.Printf("❌ UploadAttachment: Failed to store attachment: %v", err)
		http.Error(w, fmt.Sprintf("Failed to store attachment: %v", err), http.StatusInternalServerError)
		return
	}

	session.AddAttachment(*attachment)
	log.Printf("✅ UploadAttachment: Stored %s for session %s", attachment.FileName, session.ID())
	writeJSON(w, http.StatusOK, attachment)
}
