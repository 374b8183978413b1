package domain

import "time"

// Layout is the derived roof layout for a configuration.
type Layout struct {
	PanelCount      int     `json:"panel_count"`
	ArrayAreaM2     float64 `json:"array_area_m2"`
	RoofUtilization float64 `json:"roof_utilization"` // percent, 0 when roof area unknown
	Feasible        bool    `json:"feasible"`
}

// Performance is the derived production estimate for a configuration.
type Performance struct {
	AnnualProductionKWh float64 `json:"annual_production_kwh"`
	SystemEfficiency    float64 `json:"system_efficiency"` // percent
	PerformanceRatio    float64 `json:"performance_ratio"`
	DegradationRate     float64 `json:"degradation_rate"` // percent per year
}

// CostBreakdown itemizes configuration cost. Total is always the sum of
// the four component fields.
type CostBreakdown struct {
	Panels       float64 `json:"panels"`
	Inverter     float64 `json:"inverter"`
	Battery      float64 `json:"battery"`
	Installation float64 `json:"installation"`
	Total        float64 `json:"total"`
	PricePerWatt float64 `json:"price_per_watt"`
}

// SystemConfiguration is one candidate system. It references catalog
// items by value copy; the catalog remains the source of truth and
// configurations are never persisted by this core.
type SystemConfiguration struct {
	Panel              Panel         `json:"panel"`
	PanelCount         int           `json:"panel_count"`
	Inverter           Inverter      `json:"inverter"`
	InverterCount      int           `json:"inverter_count"`
	Battery            *Battery      `json:"battery,omitempty"`
	BatteryCount       int           `json:"battery_count,omitempty"`
	ActualSizeKW       float64       `json:"actual_size_kw"`
	Layout             Layout        `json:"layout"`
	Performance        Performance   `json:"performance"`
	Cost               CostBreakdown `json:"cost"`
	CompatibilityScore float64       `json:"compatibility_score"`
	Score              float64       `json:"score"`
}

// Summary aggregates ranges over every generated configuration, not just
// the returned subset.
type Summary struct {
	ConfigurationCount  int     `json:"configuration_count"`
	PriceMin            float64 `json:"price_min"`
	PriceMax            float64 `json:"price_max"`
	EfficiencyMin       float64 `json:"efficiency_min"`
	EfficiencyMax       float64 `json:"efficiency_max"`
	AnnualProductionMin float64 `json:"annual_production_min"`
	AnnualProductionMax float64 `json:"annual_production_max"`
}

// ComponentDelta is one field-by-field difference between an installed
// component and a proposed alternative.
type ComponentDelta struct {
	Field    string  `json:"field"`
	Current  float64 `json:"current"`
	Proposed float64 `json:"proposed"`
	Delta    float64 `json:"delta"`
}

// PanelAlternative proposes a replacement panel model.
type PanelAlternative struct {
	Panel     Panel            `json:"panel"`
	Deltas    []ComponentDelta `json:"deltas"`
	Benefits  []string         `json:"benefits,omitempty"`
	Drawbacks []string         `json:"drawbacks,omitempty"`
}

// InverterAlternative proposes a replacement inverter model.
type InverterAlternative struct {
	Inverter  Inverter         `json:"inverter"`
	Deltas    []ComponentDelta `json:"deltas"`
	Benefits  []string         `json:"benefits,omitempty"`
	Drawbacks []string         `json:"drawbacks,omitempty"`
}

// BatteryAlternative proposes a replacement battery model.
type BatteryAlternative struct {
	Battery   Battery          `json:"battery"`
	Deltas    []ComponentDelta `json:"deltas"`
	Benefits  []string         `json:"benefits,omitempty"`
	Drawbacks []string         `json:"drawbacks,omitempty"`
}

// ComponentAlternatives groups alternatives per installed category.
type ComponentAlternatives struct {
	Panels    []PanelAlternative    `json:"panels"`
	Inverters []InverterAlternative `json:"inverters"`
	Batteries []BatteryAlternative  `json:"batteries"`
}

// Upgrade priorities.
const (
	UpgradePriorityHigh   = "high"
	UpgradePriorityMedium = "medium"
	UpgradePriorityLow    = "low"
)

// UpgradeOpportunity is one suggested improvement to an existing system.
type UpgradeOpportunity struct {
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Priority           string  `json:"priority"`
	InvestmentEstimate float64 `json:"investment_estimate"`
	PaybackEstimate    string  `json:"payback_estimate"`
}

// UpgradePhase buckets opportunities into an installation window.
type UpgradePhase struct {
	Label    string               `json:"label"`
	Window   string               `json:"window"`
	Upgrades []UpgradeOpportunity `json:"upgrades"`
}

// UpgradePlan is the upgrade_path output: a prioritized opportunity list
// plus a three-phase timeline.
type UpgradePlan struct {
	Opportunities []UpgradeOpportunity `json:"opportunities"`
	Phases        []UpgradePhase       `json:"phases"`
}

// PanelSubstitution suggests a value-tier panel swap.
type PanelSubstitution struct {
	From    Panel   `json:"from"`
	To      Panel   `json:"to"`
	Savings float64 `json:"savings"`
}

// RightSizing suggests reducing the system size.
type RightSizing struct {
	CurrentSizeKW  float64 `json:"current_size_kw"`
	ProposedSizeKW float64 `json:"proposed_size_kw"`
	Savings        float64 `json:"savings"`
}

// Financing option types.
const (
	FinancingLoan = "loan"
	FinancingPPA  = "ppa"
)

// FinancingOption describes one alternative financing structure.
type FinancingOption struct {
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	TermYears      int     `json:"term_years,omitempty"`
	APR            float64 `json:"apr,omitempty"`
	RatePerKWh     float64 `json:"rate_per_kwh,omitempty"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// CostOptimization is the cost_optimization output.
type CostOptimization struct {
	BaselineCost      float64            `json:"baseline_cost"`
	PanelSubstitution *PanelSubstitution `json:"panel_substitution,omitempty"`
	RightSizing       *RightSizing       `json:"right_sizing,omitempty"`
	Financing         []FinancingOption  `json:"financing,omitempty"`
}

// Metadata describes how and when a result was produced.
type Metadata struct {
	RequestID       string    `json:"request_id"`
	Confidence      float64   `json:"confidence"`
	DecisionFactors []string  `json:"decision_factors,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
	ValidUntil      time.Time `json:"valid_until"`
}

// RecommendationResult is the full recommendation response payload. Only
// the fields relevant to the request type are populated.
type RecommendationResult struct {
	Type                  string                 `json:"type"`
	Recommended           []SystemConfiguration  `json:"recommended,omitempty"`
	Alternatives          []SystemConfiguration  `json:"alternatives,omitempty"`
	ComponentAlternatives *ComponentAlternatives `json:"component_alternatives,omitempty"`
	UpgradePlan           *UpgradePlan           `json:"upgrade_plan,omitempty"`
	CostPlan              *CostOptimization      `json:"cost_plan,omitempty"`
	Summary               Summary                `json:"summary"`
	Metadata              Metadata               `json:"metadata"`
}
