package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Empty(t, cfg.TrailerSize, "trailer size starts unselected")
	assert.Equal(t, OptionNone, cfg.PorchConfiguration)
	assert.Empty(t, cfg.RangeHood, "required equipment starts unselected")
	assert.Empty(t, cfg.FireSuppressionSystem)
	assert.Equal(t, OptionNone, cfg.FlatTopGriddle)
	assert.Equal(t, []string{OptionNone}, cfg.Refrigeration)
	assert.Equal(t, "white", cfg.ExteriorColor)
	assert.Equal(t, "standard", cfg.InteriorFinish)
}

func TestConfigurationUpdateApply(t *testing.T) {
	cfg := DefaultConfiguration()

	size := "8.5x20"
	email := "dana@example.com"
	update := ConfigurationUpdate{
		TrailerSize: &size,
		Email:       &email,
	}
	update.Apply(&cfg)

	assert.Equal(t, "8.5x20", cfg.TrailerSize)
	assert.Equal(t, "dana@example.com", cfg.Email)
	// Untouched fields keep their values
	assert.Equal(t, OptionNone, cfg.PorchConfiguration)
	assert.Equal(t, "white", cfg.ExteriorColor)
}

func TestConfigurationUpdateApplyCopiesRefrigeration(t *testing.T) {
	cfg := DefaultConfiguration()

	fridge := []string{"reach-in-fridge"}
	update := ConfigurationUpdate{Refrigeration: &fridge}
	update.Apply(&cfg)

	fridge[0] = "mutated"
	assert.Equal(t, []string{"reach-in-fridge"}, cfg.Refrigeration, "Apply must not alias the caller's slice")
}

func TestConfigurationUpdateEmptyStringClearsField(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.TrailerSize = "8.5x20"

	empty := ""
	update := ConfigurationUpdate{TrailerSize: &empty}
	update.Apply(&cfg)

	assert.Empty(t, cfg.TrailerSize, "an explicit empty string clears the selection")
}

func TestConfigurationUpdateJSONRoundTrip(t *testing.T) {
	body := `{"trailerSize": "8.5x24", "refrigeration": ["reach-in-fridge", "reach-in-freezer"]}`

	var update ConfigurationUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &update))

	require.NotNil(t, update.TrailerSize)
	assert.Equal(t, "8.5x24", *update.TrailerSize)
	require.NotNil(t, update.Refrigeration)
	assert.Equal(t, []string{"reach-in-fridge", "reach-in-freezer"}, *update.Refrigeration)
	assert.Nil(t, update.Email, "absent keys stay nil")
}
