package models

// Configuration holds the user's current selections across all five wizard steps.
// One instance lives per in-progress session; it is only persisted when the user
// submits on the final step.
type Configuration struct {
	// Step 1 - Trailer Basics
	TrailerSize        string `json:"trailerSize"`
	PorchConfiguration string `json:"porchConfiguration"`

	// Step 2 - Equipment
	RangeHood             string   `json:"rangeHood"`
	FireSuppressionSystem string   `json:"fireSuppressionSystem"`
	FlatTopGriddle        string   `json:"flatTopGriddle"`
	Charbroiler           string   `json:"charbroiler"`
	DeepFryer             string   `json:"deepFryer"`
	Range                 string   `json:"range"`
	SteamWell             string   `json:"steamWell"`
	WarmingCabinet        string   `json:"warmingCabinet"`
	Refrigeration         []string `json:"refrigeration"` // Multi-select, never empty: ["none"] when nothing is selected

	// Step 3 - Customization
	ExteriorColor  string `json:"exteriorColor"`
	InteriorFinish string `json:"interiorFinish"`

	// Step 4 - Financial
	Budget        string `json:"budget"`
	NeedFinancing string `json:"needFinancing"` // "yes", "no" or "maybe"

	// Step 5 - Contact
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Zipcode        string `json:"zipcode"`
	Address        string `json:"address"`
	PaymentMethods string `json:"paymentMethods"`

	// Always optional
	AdditionalInfo string `json:"additionalInfo"`
}

// DefaultConfiguration returns the step-1 defaults a new session starts with.
// Categories with a catalog default are pre-filled; required categories start empty.
func DefaultConfiguration() Configuration {
	return Configuration{
		TrailerSize:        "",
		PorchConfiguration: OptionNone,

		RangeHood:             "",
		FireSuppressionSystem: "",
		FlatTopGriddle:        OptionNone,
		Charbroiler:           OptionNone,
		DeepFryer:             OptionNone,
		Range:                 OptionNone,
		SteamWell:             OptionNone,
		WarmingCabinet:        OptionNone,
		Refrigeration:         []string{OptionNone},

		ExteriorColor:  "white",
		InteriorFinish: "standard",
	}
}

// ConfigurationUpdate is a typed partial update for Configuration. Nil fields are
// left untouched by Apply. Unknown JSON keys are rejected at the HTTP boundary.
type ConfigurationUpdate struct {
	TrailerSize        *string `json:"trailerSize,omitempty"`
	PorchConfiguration *string `json:"porchConfiguration,omitempty"`

	RangeHood             *string   `json:"rangeHood,omitempty"`
	FireSuppressionSystem *string   `json:"fireSuppressionSystem,omitempty"`
	FlatTopGriddle        *string   `json:"flatTopGriddle,omitempty"`
	Charbroiler           *string   `json:"charbroiler,omitempty"`
	DeepFryer             *string   `json:"deepFryer,omitempty"`
	Range                 *string   `json:"range,omitempty"`
	SteamWell             *string   `json:"steamWell,omitempty"`
	WarmingCabinet        *string   `json:"warmingCabinet,omitempty"`
	Refrigeration         *[]string `json:"refrigeration,omitempty"`

	ExteriorColor  *string `json:"exteriorColor,omitempty"`
	InteriorFinish *string `json:"interiorFinish,omitempty"`

	Budget        *string `json:"budget,omitempty"`
	NeedFinancing *string `json:"needFinancing,omitempty"`

	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"`
	Zipcode        *string `json:"zipcode,omitempty"`
	Address        *string `json:"address,omitempty"`
	PaymentMethods *string `json:"paymentMethods,omitempty"`

	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}

// Apply shallow-merges the update into cfg. Refrigeration normalization is the
// caller's responsibility (the configurator session normalizes after every merge).
func (u *ConfigurationUpdate) Apply(cfg *Configuration) {
	if u.TrailerSize != nil {
		cfg.TrailerSize = *u.TrailerSize
	}
	if u.PorchConfiguration != nil {
		cfg.PorchConfiguration = *u.PorchConfiguration
	}
	if u.RangeHood != nil {
		cfg.RangeHood = *u.RangeHood
	}
	if u.FireSuppressionSystem != nil {
		cfg.FireSuppressionSystem = *u.FireSuppressionSystem
	}
	if u.FlatTopGriddle != nil {
		cfg.FlatTopGriddle = *u.FlatTopGriddle
	}
	if u.Charbroiler != nil {
		cfg.Charbroiler = *u.Charbroiler
	}
	if u.DeepFryer != nil {
		cfg.DeepFryer = *u.DeepFryer
	}
	if u.Range != nil {
		cfg.Range = *u.Range
	}
	if u.SteamWell != nil {
		cfg.SteamWell = *u.SteamWell
	}
	if u.WarmingCabinet != nil {
		cfg.WarmingCabinet = *u.WarmingCabinet
	}
	if u.Refrigeration != nil {
		cfg.Refrigeration = append([]string(nil), (*u.Refrigeration)...)
	}
	if u.ExteriorColor != nil {
		cfg.ExteriorColor = *u.ExteriorColor
	}
	if u.InteriorFinish != nil {
		cfg.InteriorFinish = *u.InteriorFinish
	}
	if u.Budget != nil {
		cfg.Budget = *u.Budget
	}
	if u.NeedFinancing != nil {
		cfg.NeedFinancing = *u.NeedFinancing
	}
	if u.FirstName != nil {
		cfg.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		cfg.LastName = *u.LastName
	}
	if u.Email != nil {
		cfg.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		cfg.PhoneNumber = *u.PhoneNumber
	}
	if u.Zipcode != nil {
		cfg.Zipcode = *u.Zipcode
	}
	if u.Address != nil {
		cfg.Address = *u.Address
	}
	if u.PaymentMethods != nil {
		cfg.PaymentMethods = *u.PaymentMethods
	}
	if u.AdditionalInfo != nil {
		cfg.AdditionalInfo = *u.AdditionalInfo
	}
}
