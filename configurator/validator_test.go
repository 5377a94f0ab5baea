package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailercraft-co/catalog"
	"trailercraft-co/models"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(catalog.Default())
}

// validConfiguration returns a configuration that passes every step.
func validConfiguration() models.Configuration {
	cfg := models.DefaultConfiguration()
	cfg.TrailerSize = "8.5x20"
	cfg.RangeHood = "6ft"
	cfg.FireSuppressionSystem = "yes"
	cfg.Budget = "50k-75k"
	cfg.NeedFinancing = "yes"
	cfg.FirstName = "Dana"
	cfg.LastName = "Whitfield"
	cfg.Email = "dana@example.com"
	cfg.PhoneNumber = "(512) 555-0144"
	cfg.Zipcode = "78701"
	cfg.Address = "900 Congress Ave, Austin TX"
	cfg.PaymentMethods = "financing"
	return cfg
}

func TestStep1Validity(t *testing.T) {
	v := newValidator(t)

	cfg := models.DefaultConfiguration()
	assert.False(t, v.IsStepValid(1, cfg), "empty trailer size is invalid")
	assert.Contains(t, v.StepErrors(1, cfg), "trailerSize")

	cfg.TrailerSize = "8.5x20"
	assert.True(t, v.IsStepValid(1, cfg))

	cfg.TrailerSize = "99x99"
	assert.False(t, v.IsStepValid(1, cfg), "unrecognized trailer size is invalid")
}

func TestStep2Validity(t *testing.T) {
	v := newValidator(t)

	cfg := models.DefaultConfiguration()
	errs := v.StepErrors(2, cfg)
	assert.Contains(t, errs, "rangeHood")
	assert.Contains(t, errs, "fireSuppressionSystem")

	cfg.RangeHood = "6ft"
	cfg.FireSuppressionSystem = "yes"
	assert.True(t, v.IsStepValid(2, cfg), "other equipment is optional")
}

func TestStep3AlwaysValid(t *testing.T) {
	v := newValidator(t)
	assert.True(t, v.IsStepValid(3, models.DefaultConfiguration()))
}

func TestStep4Validity(t *testing.T) {
	v := newValidator(t)

	cfg := models.DefaultConfiguration()
	assert.False(t, v.IsStepValid(4, cfg))

	cfg.Budget = "under-50k"
	assert.False(t, v.IsStepValid(4, cfg))

	cfg.NeedFinancing = "maybe"
	assert.True(t, v.IsStepValid(4, cfg))
}

func TestStep5FieldValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name      string
		mutate    func(*models.Configuration)
		wantField string
	}{
		{"missing first name", func(c *models.Configuration) { c.FirstName = "  " }, "firstName"},
		{"missing last name", func(c *models.Configuration) { c.LastName = "" }, "lastName"},
		{"bad email no at", func(c *models.Configuration) { c.Email = "not-an-email" }, "email"},
		{"bad email no tld", func(c *models.Configuration) { c.Email = "a@b" }, "email"},
		{"bad email spaces", func(c *models.Configuration) { c.Email = "a b@c.com" }, "email"},
		{"empty phone", func(c *models.Configuration) { c.PhoneNumber = "" }, "phoneNumber"},
		{"letters in phone", func(c *models.Configuration) { c.PhoneNumber = "call me" }, "phoneNumber"},
		{"short zip", func(c *models.Configuration) { c.Zipcode = "787" }, "zipcode"},
		{"bad zip9", func(c *models.Configuration) { c.Zipcode = "78701-12" }, "zipcode"},
		{"missing address", func(c *models.Configuration) { c.Address = "" }, "address"},
		{"missing payment method", func(c *models.Configuration) { c.PaymentMethods = "" }, "paymentMethods"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(&cfg)

			assert.False(t, v.IsStepValid(5, cfg))
			errs := v.StepErrors(5, cfg)
			assert.Contains(t, errs, tt.wantField)
			assert.Len(t, errs, 1, "only the broken field should be reported")
		})
	}
}

func TestStep5AcceptedFormats(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		mutate func(*models.Configuration)
	}{
		{"plain phone digits", func(c *models.Configuration) { c.PhoneNumber = "5125550144" }},
		{"formatted phone", func(c *models.Configuration) { c.PhoneNumber = "+1 (512) 555-0144" }},
		{"five digit zip", func(c *models.Configuration) { c.Zipcode = "78701" }},
		{"nine digit zip", func(c *models.Configuration) { c.Zipcode = "78701-1234" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(&cfg)
			require.True(t, v.IsStepValid(5, cfg), "errors: %v", v.StepErrors(5, cfg))
		})
	}
}

func TestIsStepValidOutOfRange(t *testing.T) {
	v := newValidator(t)
	cfg := validConfiguration()

	assert.False(t, v.IsStepValid(0, cfg))
	assert.False(t, v.IsStepValid(6, cfg))
}

func TestCompletionPercentage(t *testing.T) {
	v := newValidator(t)

	// Untouched configuration has completed nothing
	assert.Equal(t, 0, v.CompletionPercentage(models.DefaultConfiguration()))

	// Fully valid configuration
	full := validConfiguration()
	assert.Equal(t, 100, v.CompletionPercentage(full))

	// Breaking the contact step leaves the first four steps complete
	full.Email = "nope"
	assert.Equal(t, 80, v.CompletionPercentage(full))

	// Breaking an early step stalls the progress run there
	stalled := validConfiguration()
	stalled.RangeHood = ""
	assert.Equal(t, 20, v.CompletionPercentage(stalled))

	// Bounds hold for arbitrary configurations
	weird := models.Configuration{Refrigeration: []string{"none"}}
	p := v.CompletionPercentage(weird)
	assert.GreaterOrEqual(t, p, 0)
	assert.LessOrEqual(t, p, 100)
}
