package configurator

import (
	"math"
	"regexp"
	"strings"

	"trailercraft-co/catalog"
	"trailercraft-co/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// Validator computes per-step validity and the overall completion score for a
// configuration. Pure and deterministic; it never returns errors for user
// input, only booleans and field-keyed messages.
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a Validator bound to an option catalog.
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{catalog: cat}
}

// IsStepValid reports whether the given step is complete. Steps outside 1..5
// are never valid.
func (v *Validator) IsStepValid(step int, cfg models.Configuration) bool {
	if step < 1 || step > models.StepCount {
		return false
	}
	return len(v.StepErrors(step, cfg)) == 0
}

// StepErrors returns the field-keyed validation messages for a step. An empty
// map means the step is valid. Fields from other steps are never reported, so
// the wizard can attribute every message to a visible input.
func (v *Validator) StepErrors(step int, cfg models.Configuration) models.FieldErrors {
	errs := models.FieldErrors{}

	switch step {
	case 1:
		if cfg.TrailerSize == "" {
			errs["trailerSize"] = "Please select a trailer size"
		} else if !v.catalog.Has(catalog.CategoryTrailerSize, cfg.TrailerSize) {
			errs["trailerSize"] = "Please select a valid trailer size"
		}
		// Porch has a default, so step 1 never fails on it.

	case 2:
		if cfg.RangeHood == "" {
			errs["rangeHood"] = "Please select a range hood"
		} else if !v.catalog.Has(catalog.CategoryRangeHood, cfg.RangeHood) {
			errs["rangeHood"] = "Please select a valid range hood"
		}
		if cfg.FireSuppressionSystem == "" {
			errs["fireSuppressionSystem"] = "Please select a fire suppression option"
		} else if !v.catalog.Has(catalog.CategoryFireSuppression, cfg.FireSuppressionSystem) {
			errs["fireSuppressionSystem"] = "Please select a valid fire suppression option"
		}

	case 3:
		// Both customization fields carry defaults; step 3 is always valid.

	case 4:
		if cfg.Budget == "" {
			errs["budget"] = "Please select a budget range"
		}
		if cfg.NeedFinancing == "" {
			errs["needFinancing"] = "Please tell us if you need financing"
		}

	case 5:
		if strings.TrimSpace(cfg.FirstName) == "" {
			errs["firstName"] = "First name is required"
		}
		if strings.TrimSpace(cfg.LastName) == "" {
			errs["lastName"] = "Last name is required"
		}
		if !emailPattern.MatchString(cfg.Email) {
			errs["email"] = "Please enter a valid email"
		}
		if cfg.PhoneNumber == "" || !phonePattern.MatchString(cfg.PhoneNumber) {
			errs["phoneNumber"] = "Please enter a valid phone number"
		}
		if !zipPattern.MatchString(cfg.Zipcode) {
			errs["zipcode"] = "Please enter a valid zipcode"
		}
		if strings.TrimSpace(cfg.Address) == "" {
			errs["address"] = "Address is required"
		}
		if strings.TrimSpace(cfg.PaymentMethods) == "" {
			errs["paymentMethods"] = "Please select a payment method"
		}
	}

	return errs
}

// CompletionPercentage returns the share of steps completed, 0-100 rounded to
// the nearest integer. Steps are counted as the consecutive run of valid steps
// from step 1, matching how far the wizard's progress bar can actually reach;
// an untouched configuration scores 0 even though the defaulted customization
// step would pass in isolation. Progress display only; it never gates
// navigation by itself.
func (v *Validator) CompletionPercentage(cfg models.Configuration) int {
	valid := 0
	for step := 1; step <= models.StepCount; step++ {
		if !v.IsStepValid(step, cfg) {
			break
		}
		valid++
	}
	return int(math.Round(float64(valid) / models.StepCount * 100))
}
