package recommend

// Params are the tunable estimation constants. The defaults are nominal
// installer conventions, not verified engineering standards; deployments
// override them through configuration.
type Params struct {
	// YieldFactor is the baseline annual production in kWh per kW of
	// installed capacity before shading derates.
	YieldFactor float64

	// InstallationMarkup models labor, racking hardware and permitting
	// as a fraction of equipment cost.
	InstallationMarkup float64

	// SpacingFactor inflates raw panel area to account for row spacing,
	// setbacks and walkways when checking roof fit.
	SpacingFactor float64

	// BatterySizingFactor sizes a default battery as a multiple of
	// system size (kWh per kW) when the caller gives no capacity.
	BatterySizingFactor float64

	// RecommendedCount and AlternativeCount bound the returned lists.
	RecommendedCount int
	AlternativeCount int

	// ValidityDays bounds how long a generated result should be trusted.
	ValidityDays int
}

// DefaultParams returns the nominal defaults.
func DefaultParams() Params {
	return Params{
		YieldFactor:         1350,
		InstallationMarkup:  0.30,
		SpacingFactor:       1.4,
		BatterySizingFactor: 1.5,
		RecommendedCount:    3,
		AlternativeCount:    3,
		ValidityDays:        30,
	}
}

// shadingDerate maps a shading level to a production multiplier.
func shadingDerate(level string) float64 {
	switch level {
	case "minimal":
		return 0.95
	case "moderate":
		return 0.85
	case "significant":
		return 0.70
	default:
		return 1.0
	}
}
