package models

// PricingBreakdown represents the itemized price decomposition for a configuration.
// It is derived from Configuration on every change and never stored independently,
// so the on-screen total, the persisted quote request and the generated PDF always
// come from the same arithmetic.
type PricingBreakdown struct {
	BasePrice          int64 `json:"basePrice"`          // Trailer size delta
	PorchPrice         int64 `json:"porchPrice"`         // Porch configuration delta
	EquipmentPrice     int64 `json:"equipmentPrice"`     // Sum of all equipment deltas incl. each refrigeration selection
	CustomizationPrice int64 `json:"customizationPrice"` // Exterior color + interior finish deltas
	Subtotal           int64 `json:"subtotal"`
	Tax                int64 `json:"tax"`
	Total              int64 `json:"total"`
	MonthlyPayment     int64 `json:"monthlyPayment"` // round(total / 60), display only
}

// FinancingEstimate represents one amortized term option shown on the financial step.
// Estimates only, not a financing offer.
type FinancingEstimate struct {
	TermMonths     int   `json:"termMonths"`
	MonthlyPayment int64 `json:"monthlyPayment"`
}
