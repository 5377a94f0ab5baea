package models

// QuoteSubmission is the flattened payload built on final-step submission:
// every configuration field plus the pricing breakdown, and any inspiration
// photos attached during the session.
type QuoteSubmission struct {
	SessionID     string           `json:"sessionId"`
	Configuration Configuration    `json:"configuration"`
	Pricing       PricingBreakdown `json:"pricing"`
	Attachments   []Attachment     `json:"attachments,omitempty"`
}

// Attachment represents an optimized inspiration photo uploaded during a session
type Attachment struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
	Size     int64  `json:"size"` // Bytes after optimization
}

// QuoteRequest represents a persisted quote request in the database
type QuoteRequest struct {
	ID            int64            `json:"id"`
	SessionID     string           `json:"sessionId"`
	Configuration Configuration    `json:"configuration"`
	Pricing       PricingBreakdown `json:"pricing"`
	Attachments   []Attachment     `json:"attachments,omitempty"`
	PDFFileID     string           `json:"pdfFileId,omitempty"` // Drive file ID once the quote PDF is uploaded
	CreatedAt     string           `json:"createdAt"`
}

// QuoteRequestListItem represents a quote request in a list response
type QuoteRequestListItem struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	TrailerSize   string `json:"trailerSize"`
	Total         int64  `json:"total"`
	NeedFinancing string `json:"needFinancing"`
	CreatedAt     string `json:"createdAt"`
}

// QuoteRequestListResponse represents the response for listing quote requests
// Example response:
// {
//   "quoteRequests": [
//     {
//       "id": 1,
//       "firstName": "Dana",
//       "lastName": "Whitfield",
//       "email": "dana@example.com",
//       "trailerSize": "8.5x20",
//       "total": 58100,
//       "needFinancing": "yes",
//       "createdAt": "2026-08-28T10:30:00Z"
//     }
//   ]
// }
type QuoteRequestListResponse struct {
	QuoteRequests []QuoteRequestListItem `json:"quoteRequests"`
}
