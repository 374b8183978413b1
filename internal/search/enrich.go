package search

import (
	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/compat"
	"solar_marketplace/internal/domain"
)

// CompatibleAnnotation lists components from other categories that pair
// well with the item, by ID.
type CompatibleAnnotation struct {
	Inverters []string `json:"inverters,omitempty"`
	Batteries []string `json:"batteries,omitempty"`
	Panels    []string `json:"panels,omitempty"`
}

// PricingAnnotation normalizes the item price.
type PricingAnnotation struct {
	Price        float64 `json:"price"`
	PricePerWatt float64 `json:"price_per_watt,omitempty"`
	PricePerKWh  float64 `json:"price_per_kwh,omitempty"`
}

// AvailabilityAnnotation expands the availability status with a lead
// time estimate.
type AvailabilityAnnotation struct {
	Status       string `json:"status"`
	LeadTimeDays int    `json:"lead_time_days"`
	Orderable    bool   `json:"orderable"`
}

// enrich computes only the annotations whose flag is set. Skipped flags
// must not trigger the corresponding computation; that is a cost
// contract, not just a shape contract.
func (e *Engine) enrich(item *ResultItem, o Options) {
	if o.IncludeAlternatives {
		item.Alternatives = e.alternativesFor(item.Item)
	}
	if o.IncludeCompatible {
		item.Compatible = e.compatibleFor(item.Item)
	}
	if o.IncludePricing {
		item.Pricing = pricingFor(item.Item)
	}
	if o.IncludeAvailability {
		item.Availability = availabilityFor(item.Item)
	}
}

// alternativesFor finds same-category items inside the alternative
// tolerance band, excluding the item itself.
func (e *Engine) alternativesFor(it catalog.Item) []catalog.Item {
	var out []catalog.Item
	for _, cand := range e.cat.Items([]string{it.Category}) {
		if cand.ID == it.ID {
			continue
		}
		if !withinAlternativeBand(it, cand) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

func withinAlternativeBand(it, cand catalog.Item) bool {
	ref := it.Wattage + it.CapacityW + it.CapacityKWh
	val := cand.Wattage + cand.CapacityW + cand.CapacityKWh
	if ref > 0 {
		lo := ref * (1 - compat.AlternativeTolerance)
		hi := ref * (1 + compat.AlternativeTolerance)
		if val < lo || val > hi {
			return false
		}
	}
	if it.Efficiency > 0 && cand.Efficiency < it.Efficiency*compat.MinEfficiencyRetention {
		return false
	}
	return true
}

// compatibleFor runs pairwise compatibility against the complementary
// categories. Pairings scoring 75 or better make the list.
const compatibleThreshold = 75.0

func (e *Engine) compatibleFor(it catalog.Item) *CompatibleAnnotation {
	ann := &CompatibleAnnotation{}
	switch it.Category {
	case domain.CategoryPanel:
		panel := domain.Panel{
			EquipmentBase: domain.EquipmentBase{ID: it.ID},
			Wattage:       it.Wattage,
			Efficiency:    it.Efficiency,
		}
		for _, inv := range e.cat.Inverters(catalog.Criteria{}) {
			// Size the array to the inverter before checking the band.
			count := int(inv.Capacity/panel.Wattage + 0.5)
			if count < 1 {
				count = 1
			}
			if res := compat.PanelInverter(panel, count, inv, 1); res.Feasible && res.Score >= compatibleThreshold {
				ann.Inverters = append(ann.Inverters, inv.ID)
			}
		}
	case domain.CategoryInverter:
		inv := domain.Inverter{
			EquipmentBase: domain.EquipmentBase{ID: it.ID},
			Capacity:      it.CapacityW,
			CECEfficiency: it.Efficiency,
			Type:          it.Type,
			BatteryReady:  true,
		}
		for _, bat := range e.cat.Batteries(catalog.Criteria{}) {
			if res := compat.InverterBattery(inv, bat); res.Score >= compatibleThreshold {
				ann.Batteries = append(ann.Batteries, bat.ID)
			}
		}
	case domain.CategoryBattery:
		for _, bat := range e.cat.Batteries(catalog.Criteria{}) {
			if bat.ID != it.ID {
				continue
			}
			for _, inv := range e.cat.Inverters(catalog.Criteria{}) {
				if res := compat.InverterBattery(inv, bat); res.Score >= compatibleThreshold {
					ann.Inverters = append(ann.Inverters, inv.ID)
				}
			}
			break
		}
	}
	return ann
}

func pricingFor(it catalog.Item) *PricingAnnotation {
	ann := &PricingAnnotation{Price: it.Price}
	if it.Wattage > 0 {
		ann.PricePerWatt = it.Price / it.Wattage
	}
	if it.CapacityKWh > 0 {
		ann.PricePerKWh = it.Price / it.CapacityKWh
	}
	return ann
}

func availabilityFor(it catalog.Item) *AvailabilityAnnotation {
	switch it.Availability {
	case domain.AvailabilityInStock:
		return &AvailabilityAnnotation{Status: it.Availability, LeadTimeDays: 7, Orderable: true}
	case domain.AvailabilityBackorder:
		return &AvailabilityAnnotation{Status: it.Availability, LeadTimeDays: 45, Orderable: true}
	default:
		return &AvailabilityAnnotation{Status: it.Availability, Orderable: false}
	}
}
