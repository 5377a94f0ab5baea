package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"trailercraft-co/models"
)

// Category keys. Every enumerable Configuration field maps to one of these.
const (
	CategoryTrailerSize     = "trailerSize"
	CategoryPorch           = "porch"
	CategoryRangeHood       = "rangeHood"
	CategoryFireSuppression = "fireSuppressionSystem"
	CategoryFlatTopGriddle  = "flatTopGriddle"
	CategoryCharbroiler     = "charbroiler"
	CategoryDeepFryer       = "deepFryer"
	CategoryRange           = "range"
	CategorySteamWell       = "steamWell"
	CategoryWarmingCabinet  = "warmingCabinet"
	CategoryRefrigeration   = "refrigeration"
	CategoryExteriorColor   = "exteriorColor"
	CategoryInteriorFinish  = "interiorFinish"
	CategoryBudget          = "budget"
	CategoryFinancing       = "financing"
	CategoryPaymentMethod   = "paymentMethod"
)

// Categories lists every category in wizard order.
var Categories = []string{
	CategoryTrailerSize,
	CategoryPorch,
	CategoryRangeHood,
	CategoryFireSuppression,
	CategoryFlatTopGriddle,
	CategoryCharbroiler,
	CategoryDeepFryer,
	CategoryRange,
	CategorySteamWell,
	CategoryWarmingCabinet,
	CategoryRefrigeration,
	CategoryExteriorColor,
	CategoryInteriorFinish,
	CategoryBudget,
	CategoryFinancing,
	CategoryPaymentMethod,
}

// catalogFile is the on-disk JSON shape for a catalog override file
type catalogFile struct {
	Categories map[string][]models.OptionEntry `json:"categories"`
}

// Catalog holds the option entries for every category. Loaded once at startup
// and passed explicitly into the validator, calculator and sessions; read-only
// after construction.
type Catalog struct {
	entries map[string][]models.OptionEntry
	prices  map[string]map[string]int64
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return build(defaultEntries())
}

// Load reads a catalog override JSON file and validates it. An empty path
// returns the built-in catalog.
func Load(configPath string) (*Catalog, error) {
	if configPath == "" {
		return Default(), nil
	}

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := validate(file.Categories); err != nil {
		return nil, fmt.Errorf("invalid catalog file: %w", err)
	}

	log.Printf("✅ Catalog: Loaded option catalog from %s", configPath)
	return build(file.Categories), nil
}

func build(entries map[string][]models.OptionEntry) *Catalog {
	prices := make(map[string]map[string]int64, len(entries))
	for category, options := range entries {
		index := make(map[string]int64, len(options))
		for _, opt := range options {
			index[opt.Value] = opt.Price
		}
		prices[category] = index
	}
	return &Catalog{entries: entries, prices: prices}
}

func validate(entries map[string][]models.OptionEntry) error {
	for _, category := range Categories {
		options, ok := entries[category]
		if !ok || len(options) == 0 {
			return fmt.Errorf("category %q is missing or empty", category)
		}
		seen := make(map[string]bool, len(options))
		for _, opt := range options {
			if opt.Value == "" {
				return fmt.Errorf("category %q has an entry with an empty value", category)
			}
			if seen[opt.Value] {
				return fmt.Errorf("category %q has duplicate value %q", category, opt.Value)
			}
			seen[opt.Value] = true
		}
	}
	return nil
}

// Get returns the ordered option list for a category, or nil for an unknown category.
func (c *Catalog) Get(category string) []models.OptionEntry {
	return c.entries[category]
}

// Has reports whether value is a recognized entry in the category.
func (c *Catalog) Has(category, value string) bool {
	index, ok := c.prices[category]
	if !ok {
		return false
	}
	_, ok = index[value]
	return ok
}

// Label returns the human-readable label for a value within a category,
// falling back to the raw value when it is not in the catalog.
func (c *Catalog) Label(category, value string) string {
	for _, opt := range c.entries[category] {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// LookupPrice returns the price delta for a value within a category. Absent,
// "none" and unrecognized values degrade to 0 rather than failing the whole
// calculation; unknown values are logged as a development-time concern only.
func (c *Catalog) LookupPrice(category, value string) int64 {
	if value == "" || value == models.OptionNone {
		return 0
	}
	index, ok := c.prices[category]
	if !ok {
		log.Printf("⚠️  Catalog: Unknown category %q in price lookup", category)
		return 0
	}
	price, ok := index[value]
	if !ok {
		log.Printf("⚠️  Catalog: Unknown value %q in category %q, pricing as 0", value, category)
		return 0
	}
	return price
}
