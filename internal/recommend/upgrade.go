package recommend

import (
	"fmt"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/compat"
	"solar_marketplace/internal/domain"
)

// PanelEfficiencyUpgradeThreshold marks an installed array as a repower
// candidate. Another domain convention kept overridable.
var PanelEfficiencyUpgradeThreshold = 18.0

// upgradePath inspects an existing system and produces a prioritized
// opportunity list bucketed into a three-phase timeline. A missing
// snapshot simply yields fewer opportunities.
func (e *Engine) upgradePath(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	existing := req.ExistingSystem
	opportunities := []domain.UpgradeOpportunity{}

	if existing != nil {
		if opp := e.panelRepower(existing); opp != nil {
			opportunities = append(opportunities, *opp)
		}
		if opp := e.inverterRightsize(existing); opp != nil {
			opportunities = append(opportunities, *opp)
		}
		if opp := e.batteryAddition(req.Requirements, existing); opp != nil {
			opportunities = append(opportunities, *opp)
		}
		if opp := e.monitoringUpgrade(req.Requirements, existing); opp != nil {
			opportunities = append(opportunities, *opp)
		}
	}

	return &domain.RecommendationResult{
		UpgradePlan: &domain.UpgradePlan{
			Opportunities: opportunities,
			Phases:        phaseTimeline(opportunities),
		},
	}, nil
}

func (e *Engine) panelRepower(existing *domain.ExistingSystem) *domain.UpgradeOpportunity {
	var totalEff, totalCount float64
	for _, p := range existing.Panels {
		totalEff += p.Efficiency * float64(p.Count)
		totalCount += float64(p.Count)
	}
	if totalCount == 0 {
		return nil
	}
	avgEff := totalEff / totalCount
	if avgEff >= PanelEfficiencyUpgradeThreshold {
		return nil
	}

	replacement := e.bestTierOnePanel()
	if replacement == nil {
		return nil
	}
	return &domain.UpgradeOpportunity{
		Category: domain.CategoryPanel,
		Title:    "Repower with high-efficiency tier 1 panels",
		Description: fmt.Sprintf(
			"Installed array averages %.1f%% efficiency; replacing with %s %s (%.1f%%) raises production on the same roof area",
			avgEff, replacement.Manufacturer, replacement.Model, replacement.Efficiency),
		Priority:           domain.UpgradePriorityHigh,
		InvestmentEstimate: round2(replacement.Price * totalCount),
		PaybackEstimate:    "6-9 years through increased production",
	}
}

func (e *Engine) bestTierOnePanel() *domain.Panel {
	var best *domain.Panel
	for _, p := range e.cat.Panels(catalog.Criteria{Tier: 1}) {
		if p.Availability == domain.AvailabilityDiscontinued {
			continue
		}
		if best == nil || p.Efficiency > best.Efficiency ||
			(p.Efficiency == best.Efficiency && p.ID < best.ID) {
			pp := p
			best = &pp
		}
	}
	return best
}

func (e *Engine) inverterRightsize(existing *domain.ExistingSystem) *domain.UpgradeOpportunity {
	if existing.Inverter == nil || len(existing.Panels) == 0 {
		return nil
	}
	var arrayW float64
	for _, p := range existing.Panels {
		arrayW += p.Wattage * float64(p.Count)
	}
	if arrayW <= 0 || existing.Inverter.Capacity <= 0 {
		return nil
	}
	ratio := existing.Inverter.Capacity / arrayW
	if ratio >= compat.MinInverterRatio {
		return nil
	}

	// Find the cheapest catalog inverter that brings the ratio back into
	// the band.
	var best *domain.Inverter
	for _, inv := range e.cat.Inverters(catalog.Criteria{}) {
		n := inverterCount(inv, arrayW)
		r := inv.Capacity * float64(n) / arrayW
		if r < compat.MinInverterRatio || r > compat.MaxInverterRatio {
			continue
		}
		if best == nil || inv.Price < best.Price || (inv.Price == best.Price && inv.ID < best.ID) {
			ii := inv
			best = &ii
		}
	}
	if best == nil {
		return nil
	}
	return &domain.UpgradeOpportunity{
		Category: domain.CategoryInverter,
		Title:    "Replace undersized inverter",
		Description: fmt.Sprintf(
			"Existing inverter covers %.0f%% of array output and clips production; %s %s restores full capture",
			ratio*100, best.Manufacturer, best.Model),
		Priority:           domain.UpgradePriorityHigh,
		InvestmentEstimate: best.Price,
		PaybackEstimate:    "4-6 years through recovered clipped production",
	}
}

func (e *Engine) batteryAddition(r domain.SystemRequirements, existing *domain.ExistingSystem) *domain.UpgradeOpportunity {
	if existing.Battery != nil || !r.Preferences.WantsBattery {
		return nil
	}
	bat, n := e.pickBattery(r)
	if bat == nil {
		return nil
	}
	return &domain.UpgradeOpportunity{
		Category: domain.CategoryBattery,
		Title:    "Add battery storage",
		Description: fmt.Sprintf(
			"%d x %s %s (%.1f kWh total) adds backup power and load shifting",
			n, bat.Manufacturer, bat.Model, bat.CapacityKWh*float64(n)),
		Priority:           domain.UpgradePriorityMedium,
		InvestmentEstimate: round2(bat.Price * float64(n)),
		PaybackEstimate:    "8-12 years, shorter under time-of-use rates",
	}
}

func (e *Engine) monitoringUpgrade(r domain.SystemRequirements, existing *domain.ExistingSystem) *domain.UpgradeOpportunity {
	wanted := r.Preferences.MonitoringTier
	if wanted == "" {
		return nil
	}
	if domain.MonitoringTierRank(existing.MonitoringTier) >= domain.MonitoringTierRank(wanted) {
		return nil
	}

	var best *domain.MonitoringDevice
	for _, m := range e.cat.Monitoring(catalog.Criteria{Type: wanted}) {
		if best == nil || m.Price < best.Price || (m.Price == best.Price && m.ID < best.ID) {
			mm := m
			best = &mm
		}
	}
	if best == nil {
		return nil
	}
	return &domain.UpgradeOpportunity{
		Category: domain.CategoryMonitoring,
		Title:    fmt.Sprintf("Upgrade monitoring to %s tier", wanted),
		Description: fmt.Sprintf(
			"%s %s provides %s-level production visibility", best.Manufacturer, best.Model, best.Granularity),
		Priority:           domain.UpgradePriorityLow,
		InvestmentEstimate: best.Price,
		PaybackEstimate:    "indirect, through earlier fault detection",
	}
}

// phaseTimeline buckets opportunities by priority: high first 6 months,
// medium within 18, low afterwards.
func phaseTimeline(opportunities []domain.UpgradeOpportunity) []domain.UpgradePhase {
	phases := []domain.UpgradePhase{
		{Label: "phase-1", Window: "0-6 months", Upgrades: []domain.UpgradeOpportunity{}},
		{Label: "phase-2", Window: "6-18 months", Upgrades: []domain.UpgradeOpportunity{}},
		{Label: "phase-3", Window: "18+ months", Upgrades: []domain.UpgradeOpportunity{}},
	}
	for _, opp := range opportunities {
		switch opp.Priority {
		case domain.UpgradePriorityHigh:
			phases[0].Upgrades = append(phases[0].Upgrades, opp)
		case domain.UpgradePriorityMedium:
			phases[1].Upgrades = append(phases[1].Upgrades, opp)
		default:
			phases[2].Upgrades = append(phases[2].Upgrades, opp)
		}
	}
	return phases
}
