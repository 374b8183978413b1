package domain

// Equipment category tags. These are the values accepted in search
// requests and used as the sqlite category column.
const (
	CategoryPanel      = "panel"
	CategoryInverter   = "inverter"
	CategoryBattery    = "battery"
	CategoryRacking    = "racking"
	CategoryElectrical = "electrical"
	CategoryMonitoring = "monitoring"
)

// AllCategories returns every known category tag in a fixed order.
func AllCategories() []string {
	return []string{
		CategoryPanel,
		CategoryInverter,
		CategoryBattery,
		CategoryRacking,
		CategoryElectrical,
		CategoryMonitoring,
	}
}

// Availability status values.
const (
	AvailabilityInStock      = "in-stock"
	AvailabilityBackorder    = "backorder"
	AvailabilityDiscontinued = "discontinued"
)

// Inverter types.
const (
	InverterString         = "string"
	InverterPowerOptimizer = "power-optimizer"
	InverterMicro          = "micro"
	InverterCentral        = "central"
)

// Panel cell technologies.
const (
	PanelMonocrystalline = "monocrystalline"
	PanelPolycrystalline = "polycrystalline"
	PanelThinFilm        = "thin-film"
)

// Battery coupling.
const (
	CouplingAC = "ac"
	CouplingDC = "dc"
)

// Warranty holds the manufacturer warranty terms in years.
type Warranty struct {
	ProductYears     int `json:"product_years"`
	PerformanceYears int `json:"performance_years"`
}

// EquipmentBase carries the fields shared by every equipment category.
type EquipmentBase struct {
	ID           string   `json:"id"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Warranty     Warranty `json:"warranty"`
	Availability string   `json:"availability"`
}

// Panel is a photovoltaic module.
type Panel struct {
	EquipmentBase
	Type            string  `json:"type"` // cell technology
	Wattage         float64 `json:"wattage"`
	Efficiency      float64 `json:"efficiency"` // percent
	WidthM          float64 `json:"width_m"`
	HeightM         float64 `json:"height_m"`
	TempCoefficient float64 `json:"temp_coefficient"` // %/degC, typically negative
	Tier            int     `json:"tier"`             // manufacturer bankability tier, 1 = best
	AllBlack        bool    `json:"all_black"`
}

// AreaM2 returns the module footprint in square meters.
func (p Panel) AreaM2() float64 { return p.WidthM * p.HeightM }

// PricePerWatt returns the module price normalized to $/W.
func (p Panel) PricePerWatt() float64 {
	if p.Wattage <= 0 {
		return 0
	}
	return p.Price / p.Wattage
}

// Inverter converts array DC output to AC.
type Inverter struct {
	EquipmentBase
	Capacity      float64 `json:"capacity"`       // rated W
	CECEfficiency float64 `json:"cec_efficiency"` // percent
	Type          string  `json:"type"`
	BatteryReady  bool    `json:"battery_ready"`
	MPPTChannels  int     `json:"mppt_channels"`
}

// Battery is an energy storage unit.
type Battery struct {
	EquipmentBase
	CapacityKWh         float64 `json:"capacity_kwh"`
	Technology          string  `json:"technology"`
	Coupling            string  `json:"coupling"`
	RoundTripEfficiency float64 `json:"round_trip_efficiency"` // percent
}

// PricePerKWh returns the battery price normalized to $/kWh.
func (b Battery) PricePerKWh() float64 {
	if b.CapacityKWh <= 0 {
		return 0
	}
	return b.Price / b.CapacityKWh
}

// RackingSystem is a mounting structure family. RoofTypes lists the roof
// types the family can be installed on; empty means unrestricted.
type RackingSystem struct {
	EquipmentBase
	MountType     string   `json:"mount_type"`
	RoofTypes     []string `json:"roof_types"`
	WindRatingKPH float64  `json:"wind_rating_kph"`
}

// ElectricalComponent covers combiners, disconnects, conduit and similar
// balance-of-system parts.
type ElectricalComponent struct {
	EquipmentBase
	ComponentType string  `json:"component_type"`
	AmpRating     float64 `json:"amp_rating"`
	VoltageRating float64 `json:"voltage_rating"`
}

// Monitoring tier levels, lowest to highest.
const (
	MonitoringBasic        = "basic"
	MonitoringAdvanced     = "advanced"
	MonitoringProfessional = "professional"
)

// MonitoringDevice reports production data back to the homeowner.
type MonitoringDevice struct {
	EquipmentBase
	TierLevel   string `json:"tier_level"`
	Granularity string `json:"granularity"` // system, string or panel level
}

// MonitoringTierRank maps a tier name to an ordering value for upgrade
// comparisons. Unknown tiers rank below basic.
func MonitoringTierRank(tier string) int {
	switch tier {
	case MonitoringBasic:
		return 1
	case MonitoringAdvanced:
		return 2
	case MonitoringProfessional:
		return 3
	default:
		return 0
	}
}
