package catalog

import (
	"fmt"
	"sort"

	"solar_marketplace/internal/domain"
)

// Criteria narrows a category lookup. Every field is independently
// optional; the zero value matches everything.
type Criteria struct {
	Type          string  `json:"type,omitempty"`
	Tier          int     `json:"tier,omitempty"`
	Manufacturer  string  `json:"manufacturer,omitempty"`
	MinWattage    float64 `json:"min_wattage,omitempty"`
	MaxWattage    float64 `json:"max_wattage,omitempty"`
	MinEfficiency float64 `json:"min_efficiency,omitempty"`
	MaxEfficiency float64 `json:"max_efficiency,omitempty"`
	MaxPrice      float64 `json:"max_price,omitempty"`
	MinCapacity   float64 `json:"min_capacity,omitempty"`
	MaxCapacity   float64 `json:"max_capacity,omitempty"`
	Availability  string  `json:"availability,omitempty"`
}

// Data is the raw catalog content as loaded from file, sqlite or seed.
type Data struct {
	Panels     []domain.Panel               `json:"panels"`
	Inverters  []domain.Inverter            `json:"inverters"`
	Batteries  []domain.Battery             `json:"batteries"`
	Racking    []domain.RackingSystem       `json:"racking"`
	Electrical []domain.ElectricalComponent `json:"electrical"`
	Monitoring []domain.MonitoringDevice    `json:"monitoring"`
}

// Catalog is the immutable in-process equipment reference store. Records
// are validated once at construction; lookups are read-only and safe for
// concurrent use.
type Catalog struct {
	panels     []domain.Panel
	inverters  []domain.Inverter
	batteries  []domain.Battery
	racking    []domain.RackingSystem
	electrical []domain.ElectricalComponent
	monitoring []domain.MonitoringDevice
}

// New validates every record and builds a catalog. Records are sorted by
// ID so lookup order is stable regardless of input order.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		panels:     append([]domain.Panel(nil), data.Panels...),
		inverters:  append([]domain.Inverter(nil), data.Inverters...),
		batteries:  append([]domain.Battery(nil), data.Batteries...),
		racking:    append([]domain.RackingSystem(nil), data.Racking...),
		electrical: append([]domain.ElectricalComponent(nil), data.Electrical...),
		monitoring: append([]domain.MonitoringDevice(nil), data.Monitoring...),
	}

	for i := range c.panels {
		if err := validatePanel(c.panels[i]); err != nil {
			return nil, fmt.Errorf("panel %q: %w", c.panels[i].ID, err)
		}
	}
	for i := range c.inverters {
		if err := validateInverter(c.inverters[i]); err != nil {
			return nil, fmt.Errorf("inverter %q: %w", c.inverters[i].ID, err)
		}
	}
	for i := range c.batteries {
		if err := validateBattery(c.batteries[i]); err != nil {
			return nil, fmt.Errorf("battery %q: %w", c.batteries[i].ID, err)
		}
	}
	for i := range c.racking {
		if err := validateBase(c.racking[i].EquipmentBase); err != nil {
			return nil, fmt.Errorf("racking %q: %w", c.racking[i].ID, err)
		}
	}
	for i := range c.electrical {
		if err := validateBase(c.electrical[i].EquipmentBase); err != nil {
			return nil, fmt.Errorf("electrical %q: %w", c.electrical[i].ID, err)
		}
	}
	for i := range c.monitoring {
		if err := validateBase(c.monitoring[i].EquipmentBase); err != nil {
			return nil, fmt.Errorf("monitoring %q: %w", c.monitoring[i].ID, err)
		}
	}

	sort.Slice(c.panels, func(i, j int) bool { return c.panels[i].ID < c.panels[j].ID })
	sort.Slice(c.inverters, func(i, j int) bool { return c.inverters[i].ID < c.inverters[j].ID })
	sort.Slice(c.batteries, func(i, j int) bool { return c.batteries[i].ID < c.batteries[j].ID })
	sort.Slice(c.racking, func(i, j int) bool { return c.racking[i].ID < c.racking[j].ID })
	sort.Slice(c.electrical, func(i, j int) bool { return c.electrical[i].ID < c.electrical[j].ID })
	sort.Slice(c.monitoring, func(i, j int) bool { return c.monitoring[i].ID < c.monitoring[j].ID })

	return c, nil
}

func validateBase(b domain.EquipmentBase) error {
	if b.ID == "" {
		return fmt.Errorf("missing id")
	}
	if b.Model == "" {
		return fmt.Errorf("missing model")
	}
	if b.Price < 0 {
		return fmt.Errorf("negative price %.2f", b.Price)
	}
	return nil
}

func validatePanel(p domain.Panel) error {
	if err := validateBase(p.EquipmentBase); err != nil {
		return err
	}
	if p.Wattage <= 0 {
		return fmt.Errorf("wattage must be positive, got %.1f", p.Wattage)
	}
	if p.Efficiency <= 0 || p.Efficiency > 100 {
		return fmt.Errorf("efficiency must be in (0,100], got %.1f", p.Efficiency)
	}
	return nil
}

func validateInverter(inv domain.Inverter) error {
	if err := validateBase(inv.EquipmentBase); err != nil {
		return err
	}
	if inv.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %.1f", inv.Capacity)
	}
	if inv.CECEfficiency <= 0 || inv.CECEfficiency > 100 {
		return fmt.Errorf("cec efficiency must be in (0,100], got %.1f", inv.CECEfficiency)
	}
	return nil
}

func validateBattery(b domain.Battery) error {
	if err := validateBase(b.EquipmentBase); err != nil {
		return err
	}
	if b.CapacityKWh <= 0 {
		return fmt.Errorf("capacity must be positive, got %.1f", b.CapacityKWh)
	}
	return nil
}

func matchBase(b domain.EquipmentBase, cr Criteria) bool {
	if cr.MaxPrice > 0 && b.Price > cr.MaxPrice {
		return false
	}
	if cr.Availability != "" && b.Availability != cr.Availability {
		return false
	}
	if cr.Manufacturer != "" && b.Manufacturer != cr.Manufacturer {
		return false
	}
	return true
}

// Panels returns panels matching the criteria. Unmatched criteria yield
// an empty slice, never an error.
func (c *Catalog) Panels(cr Criteria) []domain.Panel {
	out := make([]domain.Panel, 0, len(c.panels))
	for _, p := range c.panels {
		if !matchBase(p.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && p.Type != cr.Type {
			continue
		}
		if cr.Tier > 0 && p.Tier != cr.Tier {
			continue
		}
		if cr.MinWattage > 0 && p.Wattage < cr.MinWattage {
			continue
		}
		if cr.MaxWattage > 0 && p.Wattage > cr.MaxWattage {
			continue
		}
		if cr.MinEfficiency > 0 && p.Efficiency < cr.MinEfficiency {
			continue
		}
		if cr.MaxEfficiency > 0 && p.Efficiency > cr.MaxEfficiency {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Inverters returns inverters matching the criteria. Min/MaxCapacity are
// interpreted in watts.
func (c *Catalog) Inverters(cr Criteria) []domain.Inverter {
	out := make([]domain.Inverter, 0, len(c.inverters))
	for _, inv := range c.inverters {
		if !matchBase(inv.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && inv.Type != cr.Type {
			continue
		}
		if cr.MinCapacity > 0 && inv.Capacity < cr.MinCapacity {
			continue
		}
		if cr.MaxCapacity > 0 && inv.Capacity > cr.MaxCapacity {
			continue
		}
		if cr.MinEfficiency > 0 && inv.CECEfficiency < cr.MinEfficiency {
			continue
		}
		if cr.MaxEfficiency > 0 && inv.CECEfficiency > cr.MaxEfficiency {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Batteries returns batteries matching the criteria. Min/MaxCapacity are
// interpreted in kWh.
func (c *Catalog) Batteries(cr Criteria) []domain.Battery {
	out := make([]domain.Battery, 0, len(c.batteries))
	for _, b := range c.batteries {
		if !matchBase(b.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && b.Technology != cr.Type {
			continue
		}
		if cr.MinCapacity > 0 && b.CapacityKWh < cr.MinCapacity {
			continue
		}
		if cr.MaxCapacity > 0 && b.CapacityKWh > cr.MaxCapacity {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Racking returns racking systems matching the criteria.
func (c *Catalog) Racking(cr Criteria) []domain.RackingSystem {
	out := make([]domain.RackingSystem, 0, len(c.racking))
	for _, r := range c.racking {
		if !matchBase(r.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && r.MountType != cr.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Electrical returns electrical components matching the criteria.
func (c *Catalog) Electrical(cr Criteria) []domain.ElectricalComponent {
	out := make([]domain.ElectricalComponent, 0, len(c.electrical))
	for _, e := range c.electrical {
		if !matchBase(e.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && e.ComponentType != cr.Type {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Monitoring returns monitoring devices matching the criteria.
func (c *Catalog) Monitoring(cr Criteria) []domain.MonitoringDevice {
	out := make([]domain.MonitoringDevice, 0, len(c.monitoring))
	for _, m := range c.monitoring {
		if !matchBase(m.EquipmentBase, cr) {
			continue
		}
		if cr.Type != "" && m.TierLevel != cr.Type {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Counts returns the record count per category.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		domain.CategoryPanel:      len(c.panels),
		domain.CategoryInverter:   len(c.inverters),
		domain.CategoryBattery:    len(c.batteries),
		domain.CategoryRacking:    len(c.racking),
		domain.CategoryElectrical: len(c.electrical),
		domain.CategoryMonitoring: len(c.monitoring),
	}
}
