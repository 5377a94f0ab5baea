package configurator

import (
	"context"
	"sync"

	"trailercraft-co/models"
	"trailercraft-co/pricing"
)

// Submitter is the external submission collaborator invoked exactly once per
// final-step submission. It is the only side effect the state machine has.
type Submitter interface {
	Submit(ctx context.Context, submission *models.QuoteSubmission) models.SubmissionResult
}

// Session is the configurator state machine for one user: the current step,
// the configuration being built, and the derived view-model. Every mutation
// goes through UpdateConfig/ToggleRefrigeration and recomputes validity,
// completion and pricing implicitly. Invalid transitions are silent no-ops;
// no method panics or returns an error for user input.
type Session struct {
	mu sync.Mutex

	id          string
	currentStep int
	config      models.Configuration
	attachments []models.Attachment

	validator  *Validator
	calculator *pricing.Calculator
	submitter  Submitter
}

// NewSession creates a session at step 1 with default selections.
func NewSession(id string, validator *Validator, calculator *pricing.Calculator, submitter Submitter) *Session {
	return &Session{
		id:          id,
		currentStep: 1,
		config:      models.DefaultConfiguration(),
		validator:   validator,
		calculator:  calculator,
		submitter:   submitter,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CurrentStep returns the current wizard step, 1..5.
func (s *Session) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// Config returns a copy of the current configuration.
func (s *Session) Config() models.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() models.Configuration {
	cfg := s.config
	cfg.Refrigeration = append([]string(nil), s.config.Refrigeration...)
	return cfg
}

// UpdateConfig shallow-merges a partial update into the configuration and
// normalizes the refrigeration list. Derived values (validity, completion,
// pricing) are recomputed on the next View call; there is no explicit
// recalculate step for callers.
func (s *Session) UpdateConfig(update *models.ConfigurationUpdate) {
	if update == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	update.Apply(&s.config)
	s.config.Refrigeration = normalizeRefrigeration(s.config.Refrigeration)
}

// ToggleRefrigeration flips one refrigeration selection. Selecting "none"
// clears every other selection; deselecting the last real option collapses
// the list back to ["none"]. The list is never empty.
func (s *Session) ToggleRefrigeration(value string) {
	if value == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == models.OptionNone {
		s.config.Refrigeration = []string{models.OptionNone}
		return
	}

	selected := make([]string, 0, len(s.config.Refrigeration)+1)
	found := false
	for _, v := range s.config.Refrigeration {
		if v == models.OptionNone {
			continue
		}
		if v == value {
			found = true
			continue
		}
		selected = append(selected, v)
	}
	if !found {
		selected = append(selected, value)
	}
	s.config.Refrigeration = normalizeRefrigeration(selected)
}

// normalizeRefrigeration enforces the sentinel invariant: no empty strings or
// duplicates, the sentinel never coexists with real selections, and an empty
// list collapses to ["none"].
func normalizeRefrigeration(values []string) []string {
	seen := make(map[string]bool, len(values))
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || v == models.OptionNone || seen[v] {
			continue
		}
		seen[v] = true
		cleaned = append(cleaned, v)
	}
	if len(cleaned) == 0 {
		return []string{models.OptionNone}
	}
	return cleaned
}

// Next advances to the following step when the current one is valid. On the
// final step it instead builds the flattened payload and invokes the
// submission collaborator exactly once, with no retry. A successful
// submission resets the wizard to step-1 defaults; a failed one preserves the
// configuration so the user can retry without re-entering data. The returned
// result is nil unless a submission was attempted.
func (s *Session) Next(ctx context.Context) *models.SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentStep < models.StepCount {
		if s.validator.IsStepValid(s.currentStep, s.config) {
			s.currentStep++
		}
		return nil
	}

	if !s.validator.IsStepValid(models.StepCount, s.config) {
		return nil
	}

	submission := &models.QuoteSubmission{
		SessionID:     s.id,
		Configuration: s.snapshotLocked(),
		Pricing:       s.calculator.Calculate(s.config),
		Attachments:   append([]models.Attachment(nil), s.attachments...),
	}
	result := s.submitter.Submit(ctx, submission)
	if result.Success {
		s.resetLocked()
	}
	return &result
}

// Previous steps back one step. Backward navigation is always permitted.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentStep > 1 {
		s.currentStep--
	}
}

// GoTo jumps to a step under the reachability rule: any already-visited step,
// or the immediate next step when the current one is valid. Anything further
// ahead is silently refused. Returns whether the jump happened.
func (s *Session) GoTo(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step < 1 || step > models.StepCount {
		return false
	}
	if step <= s.currentStep {
		s.currentStep = step
		return true
	}
	if step == s.currentStep+1 && s.validator.IsStepValid(s.currentStep, s.config) {
		s.currentStep = step
		return true
	}
	return false
}

// Reset restores step-1 defaults and discards attachments.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.currentStep = 1
	s.config = models.DefaultConfiguration()
	s.attachments = nil
}

// AddAttachment records an optimized inspiration photo for this session. It
// rides along on the final submission.
func (s *Session) AddAttachment(att models.Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachments = append(s.attachments, att)
}

// Pricing returns the breakdown for the current configuration.
func (s *Session) Pricing() models.PricingBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calculator.Calculate(s.config)
}

// IsStepValid reports validity of a single step for the current configuration.
func (s *Session) IsStepValid(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.IsStepValid(step, s.config)
}

// CompletionPercentage returns the 0-100 progress score.
func (s *Session) CompletionPercentage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.CompletionPercentage(s.config)
}

// View composes the full view-model the wizard renders: step, per-step
// validity, completion, pricing, financing estimates and the current step's
// field errors. Safe to call repeatedly; it has no side effects.
func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	validity := make(map[int]bool, models.StepCount)
	for step := 1; step <= models.StepCount; step++ {
		validity[step] = s.validator.IsStepValid(step, s.config)
	}

	breakdown := s.calculator.Calculate(s.config)

	return models.SessionView{
		SessionID:     s.id,
		CurrentStep:   s.currentStep,
		StepValidity:  validity,
		Completion:    s.validator.CompletionPercentage(s.config),
		Pricing:       breakdown,
		Financing:     pricing.EstimateTerms(breakdown.Total),
		Errors:        s.validator.StepErrors(s.currentStep, s.config),
		Configuration: s.snapshotLocked(),
	}
}
