package domain

// Recommendation request types.
const (
	RequestSystemDesign         = "system_design"
	RequestComponentAlternative = "component_alternative"
	RequestUpgradePath          = "upgrade_path"
	RequestCostOptimization     = "cost_optimization"
)

// Priority names accepted in SystemRequirements.Priorities.
const (
	PriorityCost        = "cost"
	PriorityEfficiency  = "efficiency"
	PriorityReliability = "reliability"
	PriorityAesthetics  = "aesthetics"
	PriorityPerformance = "performance"
)

// Aesthetic preference values. AestheticsStandard is the neutral default;
// AestheticsAllBlack asks for an all-black array.
const (
	AestheticsStandard = "standard"
	AestheticsAllBlack = "all-black"
)

// Shading levels.
const (
	ShadingNone        = "none"
	ShadingMinimal     = "minimal"
	ShadingModerate    = "moderate"
	ShadingSignificant = "significant"
)

// Location describes the installation site.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Climate   string  `json:"climate,omitempty"`
	UtilityID string  `json:"utility_id,omitempty"`
}

// InstallationConstraints captures the physical site constraints.
type InstallationConstraints struct {
	RoofType     string  `json:"roof_type,omitempty"`
	RoofAreaM2   float64 `json:"roof_area_m2,omitempty"`
	RoofPitchDeg float64 `json:"roof_pitch_deg,omitempty"`
	AzimuthDeg   float64 `json:"azimuth_deg,omitempty"`
	ShadingLevel string  `json:"shading_level,omitempty"`
}

// Preferences holds the homeowner's soft preferences.
type Preferences struct {
	PanelType          string  `json:"panel_type,omitempty"`
	InverterType       string  `json:"inverter_type,omitempty"`
	WantsBattery       bool    `json:"wants_battery"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh,omitempty"`
	MonitoringTier     string  `json:"monitoring_tier,omitempty"`
	Aesthetics         string  `json:"aesthetics,omitempty"`
	BrandTier          int     `json:"brand_tier,omitempty"`
}

// SystemRequirements is the validated input to every recommendation mode.
type SystemRequirements struct {
	SystemSizeKW float64                 `json:"system_size_kw"`
	Budget       float64                 `json:"budget,omitempty"`
	Location     Location                `json:"location"`
	Installation InstallationConstraints `json:"installation"`
	Preferences  Preferences             `json:"preferences"`
	Priorities   []string                `json:"priorities"`
}

// Constraints are optional hard limits on generated configurations.
type Constraints struct {
	MaxBudget             float64 `json:"max_budget,omitempty"`
	MaxPaybackYears       float64 `json:"max_payback_years,omitempty"`
	RequiredWarrantyYears int     `json:"required_warranty_years,omitempty"`
	TimelineDays          int     `json:"timeline_days,omitempty"`
	MaintenancePreference string  `json:"maintenance_preference,omitempty"`
}

// ExistingPanel describes one panel model already installed on site.
type ExistingPanel struct {
	Manufacturer string  `json:"manufacturer,omitempty"`
	Model        string  `json:"model"`
	Wattage      float64 `json:"wattage"`
	Efficiency   float64 `json:"efficiency"`
	Count        int     `json:"count"`
	InstalledYr  int     `json:"installed_year,omitempty"`
}

// ExistingInverter describes the installed inverter.
type ExistingInverter struct {
	Manufacturer string  `json:"manufacturer,omitempty"`
	Model        string  `json:"model"`
	Capacity     float64 `json:"capacity"`
	Efficiency   float64 `json:"efficiency,omitempty"`
	Type         string  `json:"type,omitempty"`
}

// ExistingBattery describes the installed battery, if any.
type ExistingBattery struct {
	Model       string  `json:"model"`
	CapacityKWh float64 `json:"capacity_kwh"`
}

// ExistingSystem is a snapshot of an installed system, used by the
// component_alternative and upgrade_path modes.
type ExistingSystem struct {
	Panels         []ExistingPanel   `json:"panels,omitempty"`
	Inverter       *ExistingInverter `json:"inverter,omitempty"`
	Battery        *ExistingBattery  `json:"battery,omitempty"`
	MonitoringTier string            `json:"monitoring_tier,omitempty"`
}

// RecommendationRequest is the transport-level recommendation input.
type RecommendationRequest struct {
	Type           string             `json:"type"`
	Requirements   SystemRequirements `json:"requirements"`
	Constraints    *Constraints       `json:"constraints,omitempty"`
	ExistingSystem *ExistingSystem    `json:"existing_system,omitempty"`
}
