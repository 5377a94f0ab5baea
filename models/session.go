package models

// StepCount is the number of wizard steps.
const StepCount = 5

// FieldErrors maps a configuration field name to a human-readable validation
// message, so the wizard can attribute errors per field.
type FieldErrors map[string]string

// SessionView is the composed view-model the wizard renders after every
// operation: current step, validity per step, completion, pricing and the
// field errors for the current step.
type SessionView struct {
	SessionID     string              `json:"sessionId"`
	CurrentStep   int                 `json:"currentStep"`
	StepValidity  map[int]bool        `json:"stepValidity"`
	Completion    int                 `json:"completion"` // 0-100
	Pricing       PricingBreakdown    `json:"pricing"`
	Financing     []FinancingEstimate `json:"financing"`
	Errors        FieldErrors         `json:"errors"`
	Configuration Configuration       `json:"configuration"`
}

// SubmissionResult is what the submission collaborator returns. A failed
// submission is surfaced to the user; the configuration is preserved so they
// can retry without re-entering data.
type SubmissionResult struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	QuoteRequestID int64  `json:"quoteRequestId,omitempty"`
}
