package pricing

import (
	"math"

	"trailercraft-co/catalog"
	"trailercraft-co/models"
)

// ReferenceTermMonths is the fixed term behind the headline monthly figure
// shown next to the running total. Display only, not a financing offer.
const ReferenceTermMonths = 60

// Calculator maps a configuration to its pricing breakdown. Pure and
// deterministic: the same configuration always yields an identical breakdown,
// which is what keeps the on-screen total, the stored quote request and the
// generated PDF in agreement.
type Calculator struct {
	catalog *catalog.Catalog
	taxRate float64
}

// NewCalculator creates a Calculator. taxRate is a fixed, configuration
// independent rate applied to the subtotal; 0 is the normal setting since this
// is an estimate tool, not a tax engine.
func NewCalculator(cat *catalog.Catalog, taxRate float64) *Calculator {
	return &Calculator{catalog: cat, taxRate: taxRate}
}

// equipmentFields maps each single-valued equipment category to its selection.
func equipmentFields(cfg *models.Configuration) map[string]string {
	return map[string]string{
		catalog.CategoryRangeHood:       cfg.RangeHood,
		catalog.CategoryFireSuppression: cfg.FireSuppressionSystem,
		catalog.CategoryFlatTopGriddle:  cfg.FlatTopGriddle,
		catalog.CategoryCharbroiler:     cfg.Charbroiler,
		catalog.CategoryDeepFryer:       cfg.DeepFryer,
		catalog.CategoryRange:           cfg.Range,
		catalog.CategorySteamWell:       cfg.SteamWell,
		catalog.CategoryWarmingCabinet:  cfg.WarmingCabinet,
	}
}

// Calculate builds the full pricing breakdown for a configuration. Unset and
// unrecognized values contribute 0; an entry with a negative catalog price is
// honored as-is, so the component sums are not assumed non-negative.
func (c *Calculator) Calculate(cfg models.Configuration) models.PricingBreakdown {
	basePrice := c.catalog.LookupPrice(catalog.CategoryTrailerSize, cfg.TrailerSize)
	porchPrice := c.catalog.LookupPrice(catalog.CategoryPorch, cfg.PorchConfiguration)

	var equipmentPrice int64
	for category, value := range equipmentFields(&cfg) {
		equipmentPrice += c.catalog.LookupPrice(category, value)
	}
	for _, value := range cfg.Refrigeration {
		equipmentPrice += c.catalog.LookupPrice(catalog.CategoryRefrigeration, value)
	}

	customizationPrice := c.catalog.LookupPrice(catalog.CategoryExteriorColor, cfg.ExteriorColor) +
		c.catalog.LookupPrice(catalog.CategoryInteriorFinish, cfg.InteriorFinish)

	subtotal := basePrice + porchPrice + equipmentPrice + customizationPrice
	tax := int64(math.Round(float64(subtotal) * c.taxRate))
	total := subtotal + tax

	return models.PricingBreakdown{
		BasePrice:          basePrice,
		PorchPrice:         porchPrice,
		EquipmentPrice:     equipmentPrice,
		CustomizationPrice: customizationPrice,
		Subtotal:           subtotal,
		Tax:                tax,
		Total:              total,
		MonthlyPayment:     int64(math.Round(float64(total) / ReferenceTermMonths)),
	}
}
