package recommend

import (
	"math"
	"sort"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/compat"
	"solar_marketplace/internal/domain"
)

// systemDesign generates full configurations: one per viable panel and
// inverter pairing, optionally with a battery, each laid out, priced,
// scored and ranked.
func (e *Engine) systemDesign(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	r := req.Requirements

	panelCriteria := catalog.Criteria{
		Type: r.Preferences.PanelType,
		Tier: r.Preferences.BrandTier,
	}
	panels := e.cat.Panels(panelCriteria)
	inverters := e.cat.Inverters(catalog.Criteria{Type: r.Preferences.InverterType})

	var all []domain.SystemConfiguration
	for _, panel := range panels {
		count := int(math.Ceil(r.SystemSizeKW * 1000 / panel.Wattage))
		if count < 1 {
			continue
		}
		for _, inv := range inverters {
			cfg, ok := e.buildConfiguration(r, panel, count, inv)
			if !ok {
				continue
			}
			cfg.Score = scoreConfiguration(cfg, r, e.weights)
			all = append(all, cfg)
		}
	}

	// Deterministic ranking: score descending, then panel and inverter
	// ids so equal scores keep a stable order.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		if all[i].Panel.ID != all[j].Panel.ID {
			return all[i].Panel.ID < all[j].Panel.ID
		}
		return all[i].Inverter.ID < all[j].Inverter.ID
	})

	eligible := make([]domain.SystemConfiguration, 0, len(all))
	for _, cfg := range all {
		if !cfg.Layout.Feasible {
			continue
		}
		if !e.withinBudget(req, cfg) {
			continue
		}
		if !meetsWarranty(req.Constraints, cfg) {
			continue
		}
		eligible = append(eligible, cfg)
	}

	recommended, alternatives := splitRanked(eligible, e.params.RecommendedCount, e.params.AlternativeCount)

	return &domain.RecommendationResult{
		Recommended:  recommended,
		Alternatives: alternatives,
		Summary:      summarize(all),
	}, nil
}

// buildConfiguration assembles and derives one candidate. It returns
// ok=false when the pairing is infeasible at the compatibility level;
// layout-infeasible configurations are kept (they still count toward the
// summary) and excluded later.
func (e *Engine) buildConfiguration(r domain.SystemRequirements, panel domain.Panel, panelCount int, inv domain.Inverter) (domain.SystemConfiguration, bool) {
	arrayW := panel.Wattage * float64(panelCount)

	invCount := inverterCount(inv, arrayW)
	pair := compat.PanelInverter(panel, panelCount, inv, invCount)
	if !pair.Feasible || pair.Ratio > compat.MaxInverterRatio {
		return domain.SystemConfiguration{}, false
	}

	cfg := domain.SystemConfiguration{
		Panel:         panel,
		PanelCount:    panelCount,
		Inverter:      inv,
		InverterCount: invCount,
		ActualSizeKW:  arrayW / 1000,
	}

	if r.Preferences.WantsBattery {
		if bat, n := e.pickBattery(r); bat != nil {
			cfg.Battery = bat
			cfg.BatteryCount = n
		}
	}

	racking := e.pickRacking(r.Installation.RoofType)

	cfg.Layout = layoutFor(panel, panelCount, r.Installation.RoofAreaM2, e.params.SpacingFactor)
	cfg.Performance = e.performanceFor(cfg, r)
	cfg.Cost = e.costFor(cfg)

	sys := compat.System(panel, panelCount, inv, invCount, cfg.Battery, racking, r.Installation.RoofType)
	cfg.CompatibilityScore = sys.Score
	if !sys.Feasible {
		return domain.SystemConfiguration{}, false
	}
	return cfg, true
}

// inverterCount sizes the inverter bank. Microinverters go one per
// panel-equivalent; string and central units stack to approach the array
// output.
func inverterCount(inv domain.Inverter, arrayW float64) int {
	if inv.Capacity <= 0 {
		return 1
	}
	n := int(math.Round(arrayW / inv.Capacity))
	if n < 1 {
		n = 1
	}
	return n
}

// pickBattery chooses the cheapest battery bank reaching the target
// capacity: the caller's requested capacity, or BatterySizingFactor kWh
// per kW by default. Ties break by ID for determinism.
func (e *Engine) pickBattery(r domain.SystemRequirements) (*domain.Battery, int) {
	target := r.Preferences.BatteryCapacityKWh
	if target <= 0 {
		target = r.SystemSizeKW * e.params.BatterySizingFactor
	}

	var (
		best      *domain.Battery
		bestCount int
		bestCost  float64
	)
	for _, bat := range e.cat.Batteries(catalog.Criteria{}) {
		if bat.CapacityKWh <= 0 || bat.Availability == domain.AvailabilityDiscontinued {
			continue
		}
		n := int(math.Ceil(target / bat.CapacityKWh))
		if n < 1 {
			n = 1
		}
		cost := bat.Price * float64(n)
		if best == nil || cost < bestCost || (cost == bestCost && bat.ID < best.ID) {
			b := bat
			best, bestCount, bestCost = &b, n, cost
		}
	}
	return best, bestCount
}

// pickRacking returns the first racking family compatible with the roof
// type, or nil when none is.
func (e *Engine) pickRacking(roofType string) *domain.RackingSystem {
	for _, r := range e.cat.Racking(catalog.Criteria{}) {
		if res := compat.RackingRoof(r, roofType); res.Feasible {
			rr := r
			return &rr
		}
	}
	return nil
}

func layoutFor(panel domain.Panel, count int, roofAreaM2, spacingFactor float64) domain.Layout {
	arrayArea := panel.AreaM2() * float64(count) * spacingFactor
	layout := domain.Layout{
		PanelCount:  count,
		ArrayAreaM2: round2(arrayArea),
		Feasible:    true,
	}
	if roofAreaM2 > 0 {
		layout.RoofUtilization = round2(arrayArea / roofAreaM2 * 100)
		layout.Feasible = arrayArea <= roofAreaM2
	}
	return layout
}

func (e *Engine) performanceFor(cfg domain.SystemConfiguration, r domain.SystemRequirements) domain.Performance {
	derate := shadingDerate(r.Installation.ShadingLevel)
	return domain.Performance{
		AnnualProductionKWh: round2(cfg.ActualSizeKW * e.params.YieldFactor * derate),
		SystemEfficiency:    round2(cfg.Panel.Efficiency * cfg.Inverter.CECEfficiency / 100),
		PerformanceRatio:    round2(0.85 * derate * cfg.Inverter.CECEfficiency / 100),
		DegradationRate:     degradationFor(cfg.Panel),
	}
}

func degradationFor(p domain.Panel) float64 {
	switch p.Tier {
	case 1:
		return 0.5
	case 2:
		return 0.6
	default:
		return 0.7
	}
}

// costFor itemizes equipment cost and applies the installation markup.
// Total is the exact sum of the four parts.
func (e *Engine) costFor(cfg domain.SystemConfiguration) domain.CostBreakdown {
	c := domain.CostBreakdown{
		Panels:   cfg.Panel.Price * float64(cfg.PanelCount),
		Inverter: cfg.Inverter.Price * float64(cfg.InverterCount),
	}
	if cfg.Battery != nil {
		c.Battery = cfg.Battery.Price * float64(cfg.BatteryCount)
	}
	c.Installation = round2((c.Panels + c.Inverter + c.Battery) * e.params.InstallationMarkup)
	c.Total = c.Panels + c.Inverter + c.Battery + c.Installation
	if cfg.ActualSizeKW > 0 {
		c.PricePerWatt = math.Round(c.Total/(cfg.ActualSizeKW*1000)*100) / 100
	}
	return c
}

func (e *Engine) withinBudget(req domain.RecommendationRequest, cfg domain.SystemConfiguration) bool {
	if req.Constraints != nil && req.Constraints.MaxBudget > 0 && cfg.Cost.Total > req.Constraints.MaxBudget {
		return false
	}
	return true
}

func meetsWarranty(c *domain.Constraints, cfg domain.SystemConfiguration) bool {
	if c == nil || c.RequiredWarrantyYears <= 0 {
		return true
	}
	return cfg.Panel.Warranty.ProductYears >= c.RequiredWarrantyYears
}

func splitRanked(ranked []domain.SystemConfiguration, nRecommended, nAlternative int) (recommended, alternatives []domain.SystemConfiguration) {
	if len(ranked) > nRecommended {
		recommended = ranked[:nRecommended]
		rest := ranked[nRecommended:]
		if len(rest) > nAlternative {
			rest = rest[:nAlternative]
		}
		alternatives = rest
	} else {
		recommended = ranked
	}
	return recommended, alternatives
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
