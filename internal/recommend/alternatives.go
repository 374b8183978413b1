package recommend

import (
	"fmt"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/compat"
	"solar_marketplace/internal/domain"
)

// componentAlternatives finds drop-in replacements for each installed
// component: catalog items inside the tolerance band, excluding the
// installed model itself. An empty band yields empty lists, not an
// error.
func (e *Engine) componentAlternatives(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	existing := req.ExistingSystem
	alts := &domain.ComponentAlternatives{
		Panels:    []domain.PanelAlternative{},
		Inverters: []domain.InverterAlternative{},
		Batteries: []domain.BatteryAlternative{},
	}

	for _, ep := range existing.Panels {
		alts.Panels = append(alts.Panels, e.panelAlternatives(ep)...)
	}
	if existing.Inverter != nil {
		alts.Inverters = e.inverterAlternatives(*existing.Inverter)
	}
	if existing.Battery != nil {
		alts.Batteries = e.batteryAlternatives(*existing.Battery)
	}

	return &domain.RecommendationResult{ComponentAlternatives: alts}, nil
}

func (e *Engine) panelAlternatives(existing domain.ExistingPanel) []domain.PanelAlternative {
	lo := existing.Wattage * (1 - compat.AlternativeTolerance)
	hi := existing.Wattage * (1 + compat.AlternativeTolerance)
	minEff := existing.Efficiency * compat.MinEfficiencyRetention

	out := []domain.PanelAlternative{}
	for _, p := range e.cat.Panels(catalog.Criteria{MinWattage: lo, MaxWattage: hi, MinEfficiency: minEff}) {
		if p.Model == existing.Model {
			continue
		}
		count := existing.Count
		if count < 1 {
			count = 1
		}
		deltas := []domain.ComponentDelta{
			delta("efficiency", existing.Efficiency, p.Efficiency),
			delta("wattage", existing.Wattage, p.Wattage),
			delta("cost", 0, p.Price*float64(count)),
			delta("warranty_years", 0, float64(p.Warranty.ProductYears)),
		}
		benefits, drawbacks := qualify(deltas)
		out = append(out, domain.PanelAlternative{
			Panel:     p,
			Deltas:    deltas,
			Benefits:  benefits,
			Drawbacks: drawbacks,
		})
	}
	return out
}

func (e *Engine) inverterAlternatives(existing domain.ExistingInverter) []domain.InverterAlternative {
	lo := existing.Capacity * (1 - compat.AlternativeTolerance)
	hi := existing.Capacity * (1 + compat.AlternativeTolerance)
	minEff := existing.Efficiency * compat.MinEfficiencyRetention

	out := []domain.InverterAlternative{}
	for _, inv := range e.cat.Inverters(catalog.Criteria{MinCapacity: lo, MaxCapacity: hi, MinEfficiency: minEff}) {
		if inv.Model == existing.Model {
			continue
		}
		deltas := []domain.ComponentDelta{
			delta("efficiency", existing.Efficiency, inv.CECEfficiency),
			delta("capacity", existing.Capacity, inv.Capacity),
			delta("cost", 0, inv.Price),
			delta("warranty_years", 0, float64(inv.Warranty.ProductYears)),
		}
		benefits, drawbacks := qualify(deltas)
		out = append(out, domain.InverterAlternative{
			Inverter:  inv,
			Deltas:    deltas,
			Benefits:  benefits,
			Drawbacks: drawbacks,
		})
	}
	return out
}

func (e *Engine) batteryAlternatives(existing domain.ExistingBattery) []domain.BatteryAlternative {
	lo := existing.CapacityKWh * (1 - compat.AlternativeTolerance)
	hi := existing.CapacityKWh * (1 + compat.AlternativeTolerance)

	out := []domain.BatteryAlternative{}
	for _, b := range e.cat.Batteries(catalog.Criteria{MinCapacity: lo, MaxCapacity: hi}) {
		if b.Model == existing.Model {
			continue
		}
		deltas := []domain.ComponentDelta{
			delta("capacity_kwh", existing.CapacityKWh, b.CapacityKWh),
			delta("cost", 0, b.Price),
			delta("warranty_years", 0, float64(b.Warranty.ProductYears)),
		}
		benefits, drawbacks := qualify(deltas)
		out = append(out, domain.BatteryAlternative{
			Battery:   b,
			Deltas:    deltas,
			Benefits:  benefits,
			Drawbacks: drawbacks,
		})
	}
	return out
}

func delta(field string, current, proposed float64) domain.ComponentDelta {
	return domain.ComponentDelta{
		Field:    field,
		Current:  current,
		Proposed: proposed,
		Delta:    round2(proposed - current),
	}
}

// qualify turns delta signs into human-readable benefit and drawback
// lines. Cost deltas with no known current value are skipped, they carry
// no direction.
func qualify(deltas []domain.ComponentDelta) (benefits, drawbacks []string) {
	for _, d := range deltas {
		if d.Current == 0 || d.Delta == 0 {
			continue
		}
		switch {
		case d.Field == "cost" && d.Delta < 0:
			benefits = append(benefits, fmt.Sprintf("lower cost (%.2f)", d.Delta))
		case d.Field == "cost" && d.Delta > 0:
			drawbacks = append(drawbacks, fmt.Sprintf("higher cost (+%.2f)", d.Delta))
		case d.Delta > 0:
			benefits = append(benefits, fmt.Sprintf("higher %s (+%.2f)", d.Field, d.Delta))
		default:
			drawbacks = append(drawbacks, fmt.Sprintf("lower %s (%.2f)", d.Field, d.Delta))
		}
	}
	return benefits, drawbacks
}
