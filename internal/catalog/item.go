package catalog

import "solar_marketplace/internal/domain"

// Item is a flattened cross-category view of an equipment record, used by
// the search engine. Numeric fields not applicable to a category stay
// zero and are omitted from JSON.
type Item struct {
	Category     string          `json:"category"`
	ID           string          `json:"id"`
	Manufacturer string          `json:"manufacturer"`
	Model        string          `json:"model"`
	Description  string          `json:"description,omitempty"`
	Price        float64         `json:"price"`
	Warranty     domain.Warranty `json:"warranty"`
	Availability string          `json:"availability"`
	Wattage      float64         `json:"wattage,omitempty"`
	CapacityW    float64         `json:"capacity_w,omitempty"`
	CapacityKWh  float64         `json:"capacity_kwh,omitempty"`
	Efficiency   float64         `json:"efficiency,omitempty"`
	Tier         int             `json:"tier,omitempty"`
	Type         string          `json:"type,omitempty"`
}

func itemFromBase(category string, b domain.EquipmentBase) Item {
	return Item{
		Category:     category,
		ID:           b.ID,
		Manufacturer: b.Manufacturer,
		Model:        b.Model,
		Description:  b.Description,
		Price:        b.Price,
		Warranty:     b.Warranty,
		Availability: b.Availability,
	}
}

// ItemFromPanel flattens a panel record.
func ItemFromPanel(p domain.Panel) Item {
	it := itemFromBase(domain.CategoryPanel, p.EquipmentBase)
	it.Wattage = p.Wattage
	it.Efficiency = p.Efficiency
	it.Tier = p.Tier
	it.Type = p.Type
	return it
}

// ItemFromInverter flattens an inverter record.
func ItemFromInverter(inv domain.Inverter) Item {
	it := itemFromBase(domain.CategoryInverter, inv.EquipmentBase)
	it.CapacityW = inv.Capacity
	it.Efficiency = inv.CECEfficiency
	it.Type = inv.Type
	return it
}

// ItemFromBattery flattens a battery record.
func ItemFromBattery(b domain.Battery) Item {
	it := itemFromBase(domain.CategoryBattery, b.EquipmentBase)
	it.CapacityKWh = b.CapacityKWh
	it.Efficiency = b.RoundTripEfficiency
	it.Type = b.Technology
	return it
}

// ItemFromRacking flattens a racking record.
func ItemFromRacking(r domain.RackingSystem) Item {
	it := itemFromBase(domain.CategoryRacking, r.EquipmentBase)
	it.Type = r.MountType
	return it
}

// ItemFromElectrical flattens an electrical component record.
func ItemFromElectrical(e domain.ElectricalComponent) Item {
	it := itemFromBase(domain.CategoryElectrical, e.EquipmentBase)
	it.Type = e.ComponentType
	return it
}

// ItemFromMonitoring flattens a monitoring device record.
func ItemFromMonitoring(m domain.MonitoringDevice) Item {
	it := itemFromBase(domain.CategoryMonitoring, m.EquipmentBase)
	it.Type = m.TierLevel
	return it
}

// Items flattens the requested categories in catalog order. An empty
// category list means all categories.
func (c *Catalog) Items(categories []string) []Item {
	if len(categories) == 0 {
		categories = domain.AllCategories()
	}
	var out []Item
	for _, cat := range categories {
		switch cat {
		case domain.CategoryPanel:
			for _, p := range c.panels {
				out = append(out, ItemFromPanel(p))
			}
		case domain.CategoryInverter:
			for _, inv := range c.inverters {
				out = append(out, ItemFromInverter(inv))
			}
		case domain.CategoryBattery:
			for _, b := range c.batteries {
				out = append(out, ItemFromBattery(b))
			}
		case domain.CategoryRacking:
			for _, r := range c.racking {
				out = append(out, ItemFromRacking(r))
			}
		case domain.CategoryElectrical:
			for _, e := range c.electrical {
				out = append(out, ItemFromElectrical(e))
			}
		case domain.CategoryMonitoring:
			for _, m := range c.monitoring {
				out = append(out, ItemFromMonitoring(m))
			}
		}
	}
	return out
}

// MatchItem applies criteria to a flattened item the same way the typed
// lookups do, so search filters and catalog filters agree.
func MatchItem(it Item, cr Criteria) bool {
	if !matchBase(domain.EquipmentBase{
		ID:           it.ID,
		Manufacturer: it.Manufacturer,
		Model:        it.Model,
		Price:        it.Price,
		Availability: it.Availability,
	}, cr) {
		return false
	}
	if cr.Tier > 0 && it.Tier != cr.Tier {
		return false
	}
	if cr.Type != "" && it.Type != cr.Type {
		return false
	}
	if cr.MinWattage > 0 && it.Wattage < cr.MinWattage {
		return false
	}
	if cr.MaxWattage > 0 && it.Wattage > cr.MaxWattage {
		return false
	}
	if cr.MinEfficiency > 0 && it.Efficiency < cr.MinEfficiency {
		return false
	}
	if cr.MaxEfficiency > 0 && it.Efficiency > cr.MaxEfficiency {
		return false
	}
	capacity := it.CapacityW
	if capacity == 0 {
		capacity = it.CapacityKWh
	}
	if cr.MinCapacity > 0 && capacity < cr.MinCapacity {
		return false
	}
	if cr.MaxCapacity > 0 && capacity > cr.MaxCapacity {
		return false
	}
	return true
}
