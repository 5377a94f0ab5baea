package catalog

import "trailercraft-co/models"

// defaultEntries returns the built-in option catalog. Prices are whole dollars.
// A catalog override file replaces the whole set, never individual entries.
func defaultEntries() map[string][]models.OptionEntry {
	return map[string][]models.OptionEntry{
		CategoryTrailerSize: {
			{Value: "8.5x16", Label: "8.5' x 16'", Price: 40000, Description: "Compact footprint for single-cook menus"},
			{Value: "8.5x18", Label: "8.5' x 18'", Price: 44000},
			{Value: "8.5x20", Label: "8.5' x 20'", Price: 48000, Description: "Our most popular layout"},
			{Value: "8.5x24", Label: "8.5' x 24'", Price: 55000},
			{Value: "8.5x28", Label: "8.5' x 28'", Price: 62000, Description: "Full crew, dual service windows"},
		},
		CategoryPorch: {
			{Value: models.OptionNone, Label: "No Porch", Price: 0},
			{Value: "4ft", Label: "4' Rear Porch", Price: 3500},
			{Value: "6ft", Label: "6' Rear Porch", Price: 4800},
			{Value: "8ft", Label: "8' Rear Porch", Price: 6200},
		},
		CategoryRangeHood: {
			{Value: "4ft", Label: "4' Range Hood", Price: 1200},
			{Value: "6ft", Label: "6' Range Hood", Price: 1800},
			{Value: "8ft", Label: "8' Range Hood", Price: 2400},
			{Value: "10ft", Label: "10' Range Hood", Price: 3100},
		},
		CategoryFireSuppression: {
			{Value: "yes", Label: "Ansul Fire Suppression System", Price: 3500},
			{Value: "no", Label: "No Fire Suppression (check local code)", Price: 0},
		},
		CategoryFlatTopGriddle: {
			{Value: models.OptionNone, Label: "No Griddle", Price: 0},
			{Value: "24in", Label: "24\" Flat Top Griddle", Price: 1400},
			{Value: "36in", Label: "36\" Flat Top Griddle", Price: 1900},
			{Value: "48in", Label: "48\" Flat Top Griddle", Price: 2600},
		},
		CategoryCharbroiler: {
			{Value: models.OptionNone, Label: "No Charbroiler", Price: 0},
			{Value: "24in", Label: "24\" Charbroiler", Price: 1600},
			{Value: "36in", Label: "36\" Charbroiler", Price: 2200},
		},
		CategoryDeepFryer: {
			{Value: models.OptionNone, Label: "No Fryer", Price: 0},
			{Value: "single-40lb", Label: "Single 40lb Fryer", Price: 1800},
			{Value: "double-40lb", Label: "Double 40lb Fryer", Price: 3200},
			{Value: "triple-40lb", Label: "Triple 40lb Fryer", Price: 4500},
		},
		CategoryRange: {
			{Value: models.OptionNone, Label: "No Range", Price: 0},
			{Value: "4-burner", Label: "4-Burner Range with Oven", Price: 1700},
			{Value: "6-burner", Label: "6-Burner Range with Oven", Price: 2400},
		},
		CategorySteamWell: {
			{Value: models.OptionNone, Label: "No Steam Well", Price: 0},
			{Value: "3-pan", Label: "3-Pan Steam Well", Price: 900},
			{Value: "5-pan", Label: "5-Pan Steam Well", Price: 1300},
		},
		CategoryWarmingCabinet: {
			{Value: models.OptionNone, Label: "No Warming Cabinet", Price: 0},
			{Value: "half-size", Label: "Half-Size Warming Cabinet", Price: 1500},
			{Value: "full-size", Label: "Full-Size Warming Cabinet", Price: 2300},
		},
		CategoryRefrigeration: {
			{Value: models.OptionNone, Label: "No Refrigeration", Price: 0},
			{Value: "undercounter-fridge", Label: "Undercounter Refrigerator", Price: 1800},
			{Value: "reach-in-fridge", Label: "Reach-In Refrigerator", Price: 2500},
			{Value: "reach-in-freezer", Label: "Reach-In Freezer", Price: 3000},
			{Value: "prep-table-fridge", Label: "Refrigerated Prep Table", Price: 2800},
		},
		CategoryExteriorColor: {
			{Value: "white", Label: "Gloss White", Price: 0, Hex: "#FFFFFF"},
			{Value: "black", Label: "Matte Black", Price: 0, Hex: "#1C1C1C"},
			{Value: "red", Label: "Firehouse Red", Price: 450, Hex: "#C8102E"},
			{Value: "blue", Label: "Coastal Blue", Price: 450, Hex: "#1F4E79"},
			{Value: "custom-wrap", Label: "Full Custom Vinyl Wrap", Price: 2200, Description: "Send us your artwork after checkout"},
		},
		CategoryInteriorFinish: {
			{Value: "standard", Label: "Standard Aluminum Walls", Price: 0},
			{Value: "diamond-plate", Label: "Diamond Plate Accents", Price: 1200},
			{Value: "stainless-full", Label: "Full Stainless Interior", Price: 1900},
		},
		CategoryBudget: {
			{Value: "under-50k", Label: "Under $50,000", Price: 0},
			{Value: "50k-75k", Label: "$50,000 - $75,000", Price: 0},
			{Value: "75k-100k", Label: "$75,000 - $100,000", Price: 0},
			{Value: "over-100k", Label: "Over $100,000", Price: 0},
		},
		CategoryFinancing: {
			{Value: "yes", Label: "Yes, I need financing", Price: 0},
			{Value: "no", Label: "No, paying in full", Price: 0},
			{Value: "maybe", Label: "Maybe, show me options", Price: 0},
		},
		CategoryPaymentMethod: {
			{Value: "cash", Label: "Cash / Wire Transfer", Price: 0},
			{Value: "financing", Label: "Financing", Price: 0},
			{Value: "business-loan", Label: "Business Loan", Price: 0},
			{Value: "credit-card", Label: "Credit Card", Price: 0},
		},
	}
}
