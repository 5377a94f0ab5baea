package models

// OptionNone is the catalog value meaning "no selection in this category".
// It is a real catalog entry priced at zero, not an absence of data.
const OptionNone = "none"

// OptionEntry represents a single selectable option within a category
type OptionEntry struct {
	Value       string `json:"value"`                 // Unique within its category
	Label       string `json:"label"`                 // Human-readable name
	Price       int64  `json:"price"`                 // Additive delta in whole dollars
	Hex         string `json:"hex,omitempty"`         // Swatch color for exterior colors
	Description string `json:"description,omitempty"` // Extra detail shown in the wizard
}

// OptionCategoryResponse represents one category in the options endpoint response
type OptionCategoryResponse struct {
	Category string        `json:"category"`
	Options  []OptionEntry `json:"options"`
}

// OptionsResponse represents the response for GET /api/configurator/options
type OptionsResponse struct {
	Categories []OptionCategoryResponse `json:"categories"`
}
