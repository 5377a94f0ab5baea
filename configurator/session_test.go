package configurator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailercraft-co/catalog"
	"trailercraft-co/models"
	"trailercraft-co/pricing"
)

// fakeSubmitter records submissions and can be told to fail
type fakeSubmitter struct {
	calls int
	fail  bool
	last  *models.QuoteSubmission
}

func (f *fakeSubmitter) Submit(_ context.Context, submission *models.QuoteSubmission) models.SubmissionResult {
	f.calls++
	f.last = submission
	if f.fail {
		return models.SubmissionResult{Success: false, Error: "crm is down"}
	}
	return models.SubmissionResult{Success: true, QuoteRequestID: 42}
}

func newTestSession(t *testing.T) (*Session, *fakeSubmitter) {
	t.Helper()
	cat := catalog.Default()
	submitter := &fakeSubmitter{}
	session := NewSession("test-session", NewValidator(cat), pricing.NewCalculator(cat, 0), submitter)
	return session, submitter
}

func strp(s string) *string { return &s }

// fillStep applies the minimum updates to make the given step valid.
func fillStep(s *Session, step int) {
	switch step {
	case 1:
		s.UpdateConfig(&models.ConfigurationUpdate{TrailerSize: strp("8.5x20")})
	case 2:
		s.UpdateConfig(&models.ConfigurationUpdate{
			RangeHood:             strp("6ft"),
			FireSuppressionSystem: strp("yes"),
		})
	case 4:
		s.UpdateConfig(&models.ConfigurationUpdate{
			Budget:        strp("50k-75k"),
			NeedFinancing: strp("yes"),
		})
	case 5:
		s.UpdateConfig(&models.ConfigurationUpdate{
			FirstName:      strp("Dana"),
			LastName:       strp("Whitfield"),
			Email:          strp("dana@example.com"),
			PhoneNumber:    strp("512-555-0144"),
			Zipcode:        strp("78701"),
			Address:        strp("900 Congress Ave"),
			PaymentMethods: strp("financing"),
		})
	}
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	s, _ := newTestSession(t)

	require.Equal(t, 1, s.CurrentStep())
	assert.Nil(t, s.Next(context.Background()))
	assert.Equal(t, 1, s.CurrentStep(), "cannot advance past an invalid step")

	fillStep(s, 1)
	assert.Nil(t, s.Next(context.Background()))
	assert.Equal(t, 2, s.CurrentStep())
}

func TestPreviousAlwaysPermitted(t *testing.T) {
	s, _ := newTestSession(t)

	s.Previous()
	assert.Equal(t, 1, s.CurrentStep(), "previous at step 1 is a no-op")

	fillStep(s, 1)
	s.Next(context.Background())
	require.Equal(t, 2, s.CurrentStep())

	s.Previous()
	assert.Equal(t, 1, s.CurrentStep(), "going back needs no validity")
}

func TestGoToReachability(t *testing.T) {
	s, _ := newTestSession(t)

	// Never more than one step ahead of the last validated step
	assert.False(t, s.GoTo(2), "step 1 is not valid yet")
	assert.False(t, s.GoTo(3))

	fillStep(s, 1)
	assert.False(t, s.GoTo(3), "skipping a step is refused even when step 1 is valid")
	assert.True(t, s.GoTo(2))
	assert.Equal(t, 2, s.CurrentStep())

	// Transitive advancement: reaching step 4 takes valid steps 2 and 3 in turn
	fillStep(s, 2)
	assert.True(t, s.GoTo(3))
	assert.True(t, s.GoTo(4))

	// Backward jumps are always allowed
	assert.True(t, s.GoTo(1))
	assert.Equal(t, 1, s.CurrentStep())

	// Out-of-range steps are refused
	assert.False(t, s.GoTo(0))
	assert.False(t, s.GoTo(6))
}

func TestToggleRefrigerationSentinelInvariant(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, []string{"none"}, s.Config().Refrigeration)

	s.ToggleRefrigeration("reach-in-fridge")
	assert.Equal(t, []string{"reach-in-fridge"}, s.Config().Refrigeration)

	s.ToggleRefrigeration("reach-in-freezer")
	assert.Equal(t, []string{"reach-in-fridge", "reach-in-freezer"}, s.Config().Refrigeration)

	// Selecting the sentinel clears everything else
	s.ToggleRefrigeration("none")
	assert.Equal(t, []string{"none"}, s.Config().Refrigeration)

	// Deselecting the last real option collapses back to the sentinel
	s.ToggleRefrigeration("reach-in-fridge")
	s.ToggleRefrigeration("reach-in-fridge")
	assert.Equal(t, []string{"none"}, s.Config().Refrigeration)

	// No toggle sequence ever leaves the list empty
	sequence := []string{"reach-in-fridge", "none", "reach-in-freezer", "reach-in-freezer", "none", "none"}
	for _, value := range sequence {
		s.ToggleRefrigeration(value)
		assert.NotEmpty(t, s.Config().Refrigeration)
	}
}

func TestToggleRefrigerationAffectsPricing(t *testing.T) {
	s, _ := newTestSession(t)

	base := s.Pricing().EquipmentPrice

	s.ToggleRefrigeration("reach-in-fridge")
	assert.Equal(t, base+2500, s.Pricing().EquipmentPrice)

	s.ToggleRefrigeration("none")
	assert.Equal(t, base, s.Pricing().EquipmentPrice, "sentinel removes the refrigeration delta")
}

func TestUpdateConfigNormalizesRefrigeration(t *testing.T) {
	s, _ := newTestSession(t)

	// An empty list is an invalid intermediate state; it collapses to the sentinel
	s.UpdateConfig(&models.ConfigurationUpdate{Refrigeration: &[]string{}})
	assert.Equal(t, []string{"none"}, s.Config().Refrigeration)

	// The sentinel never coexists with real selections
	s.UpdateConfig(&models.ConfigurationUpdate{Refrigeration: &[]string{"none", "reach-in-fridge"}})
	assert.Equal(t, []string{"reach-in-fridge"}, s.Config().Refrigeration)

	// Duplicates and empty strings are dropped
	s.UpdateConfig(&models.ConfigurationUpdate{Refrigeration: &[]string{"reach-in-fridge", "", "reach-in-fridge"}})
	assert.Equal(t, []string{"reach-in-fridge"}, s.Config().Refrigeration)
}

func TestUpdateConfigNilIsNoOp(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Config()
	s.UpdateConfig(nil)
	assert.Equal(t, before, s.Config())
}

func walkToStep5(t *testing.T, s *Session) {
	t.Helper()
	for _, step := range []int{1, 2, 3, 4} {
		fillStep(s, step)
		s.Next(context.Background())
	}
	require.Equal(t, 5, s.CurrentStep())
}

func TestSubmitHappyPath(t *testing.T) {
	s, submitter := newTestSession(t)

	walkToStep5(t, s)
	fillStep(s, 5)
	s.AddAttachment(models.Attachment{FileName: "truck.jpg", Path: "cache/attachments/x/truck.jpg", Size: 1234})

	result := s.Next(context.Background())

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, int64(42), result.QuoteRequestID)
	require.Equal(t, 1, submitter.calls, "submitter is invoked exactly once")

	// The flattened payload carries the configuration, pricing and attachments
	require.NotNil(t, submitter.last)
	assert.Equal(t, "8.5x20", submitter.last.Configuration.TrailerSize)
	// 48000 trailer + 1800 hood + 3500 fire suppression
	assert.Equal(t, int64(53300), submitter.last.Pricing.Total)
	assert.Len(t, submitter.last.Attachments, 1)

	// Success clears the wizard back to step-1 defaults
	assert.Equal(t, 1, s.CurrentStep())
	assert.Equal(t, models.DefaultConfiguration(), s.Config())
}

func TestSubmitBlockedByInvalidContactStep(t *testing.T) {
	s, submitter := newTestSession(t)

	walkToStep5(t, s)
	fillStep(s, 5)
	s.UpdateConfig(&models.ConfigurationUpdate{Email: strp("not-an-email")})

	result := s.Next(context.Background())

	assert.Nil(t, result)
	assert.Equal(t, 0, submitter.calls, "invalid step 5 never reaches the submitter")
	assert.Equal(t, 5, s.CurrentStep())
	assert.Contains(t, s.View().Errors, "email")
}

func TestSubmitFailurePreservesConfiguration(t *testing.T) {
	s, submitter := newTestSession(t)
	submitter.fail = true

	walkToStep5(t, s)
	fillStep(s, 5)

	result := s.Next(context.Background())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "crm is down", result.Error)

	// The user can retry without re-entering anything
	assert.Equal(t, 5, s.CurrentStep())
	assert.Equal(t, "dana@example.com", s.Config().Email)
	assert.Equal(t, "8.5x20", s.Config().TrailerSize)
}

func TestResetRestoresDefaults(t *testing.T) {
	s, submitter := newTestSession(t)

	fillStep(s, 1)
	s.Next(context.Background())
	fillStep(s, 2)
	s.AddAttachment(models.Attachment{FileName: "a.jpg"})

	s.Reset()

	assert.Equal(t, 1, s.CurrentStep())
	assert.Equal(t, models.DefaultConfiguration(), s.Config())

	// Attachments were discarded too
	walkToStep5(t, s)
	fillStep(s, 5)
	result := s.Next(context.Background())
	require.NotNil(t, result)
	assert.Empty(t, submitter.last.Attachments)
}

func TestViewComposition(t *testing.T) {
	s, _ := newTestSession(t)

	view := s.View()
	assert.Equal(t, "test-session", view.SessionID)
	assert.Equal(t, 1, view.CurrentStep)
	assert.Equal(t, 0, view.Completion)
	assert.False(t, view.StepValidity[1])
	assert.True(t, view.StepValidity[3])
	assert.Equal(t, int64(0), view.Pricing.Total)
	assert.Len(t, view.Financing, 3)
	assert.Contains(t, view.Errors, "trailerSize")

	fillStep(s, 1)
	view = s.View()
	assert.True(t, view.StepValidity[1])
	assert.Empty(t, view.Errors)
	assert.Equal(t, int64(48000), view.Pricing.Total)

	// Completion is 100 exactly when every step is valid
	for _, step := range []int{2, 4, 5} {
		fillStep(s, step)
	}
	view = s.View()
	assert.Equal(t, 100, view.Completion)
	for step := 1; step <= models.StepCount; step++ {
		assert.True(t, view.StepValidity[step])
	}
}

func TestViewIsSideEffectFree(t *testing.T) {
	s, _ := newTestSession(t)
	fillStep(s, 1)

	first := s.View()
	second := s.View()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.CurrentStep())
}
