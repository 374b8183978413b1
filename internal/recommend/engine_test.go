package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.New(catalog.SeedData())
	require.NoError(t, err)
	return NewEngine(cat, DefaultParams(), DefaultWeights())
}

func designRequest(sizeKW float64) domain.RecommendationRequest {
	return domain.RecommendationRequest{
		Type: domain.RequestSystemDesign,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: sizeKW,
			Priorities:   []string{domain.PriorityCost},
		},
	}
}

func TestBuildConfigurationSizing(t *testing.T) {
	e := newTestEngine(t)

	panels := e.cat.Panels(catalog.Criteria{Manufacturer: "SolarMax"})
	require.Len(t, panels, 1)
	inverters := e.cat.Inverters(catalog.Criteria{Manufacturer: "SMA"})
	require.Len(t, inverters, 1)

	// A 9.2 kW target on 400 W panels takes 23 panels; two 5 kW
	// inverters land the ratio at 1.087, inside the sizing band.
	r := domain.SystemRequirements{SystemSizeKW: 9.2, Priorities: []string{domain.PriorityCost}}
	cfg, ok := e.buildConfiguration(r, panels[0], 23, inverters[0])
	require.True(t, ok)

	assert.Equal(t, 23, cfg.PanelCount)
	assert.Equal(t, 2, cfg.InverterCount)
	assert.InDelta(t, 9.2, cfg.ActualSizeKW, 1e-9)

	assert.InDelta(t, 3956.0, cfg.Cost.Panels, 1e-9)
	assert.InDelta(t, 3300.0, cfg.Cost.Inverter, 1e-9)
	assert.InDelta(t, 2176.8, cfg.Cost.Installation, 1e-9)
	assert.InDelta(t, 9432.8, cfg.Cost.Total, 1e-9)
	assert.InDelta(t, 1.03, cfg.Cost.PricePerWatt, 1e-9)

	assert.InDelta(t, 12420.0, cfg.Performance.AnnualProductionKWh, 0.01)
	assert.True(t, cfg.Layout.Feasible)
}

func TestBuildConfigurationRejectsOutOfBand(t *testing.T) {
	e := newTestEngine(t)

	panels := e.cat.Panels(catalog.Criteria{Manufacturer: "ValueGen"})
	require.Len(t, panels, 1)
	inverters := e.cat.Inverters(catalog.Criteria{Manufacturer: "Fronius"})
	require.Len(t, inverters, 1)

	// One 350 W panel against an 8.2 kW inverter cannot be sized into
	// the band.
	r := domain.SystemRequirements{SystemSizeKW: 0.35, Priorities: []string{domain.PriorityCost}}
	_, ok := e.buildConfiguration(r, panels[0], 1, inverters[0])
	assert.False(t, ok)
}

func TestSystemDesign(t *testing.T) {
	e := newTestEngine(t)

	t.Run("returns ranked feasible configurations", func(t *testing.T) {
		res, err := e.Recommend(designRequest(9.2))
		require.NoError(t, err)

		assert.Equal(t, domain.RequestSystemDesign, res.Type)
		require.NotEmpty(t, res.Recommended)
		assert.LessOrEqual(t, len(res.Recommended), 3)
		assert.LessOrEqual(t, len(res.Alternatives), 3)

		for _, cfg := range append(res.Recommended, res.Alternatives...) {
			assert.True(t, cfg.Layout.Feasible)
			assert.GreaterOrEqual(t, cfg.Score, 0.0)
			assert.LessOrEqual(t, cfg.Score, 100.0)
			assert.GreaterOrEqual(t, cfg.CompatibilityScore, 0.0)
			assert.LessOrEqual(t, cfg.CompatibilityScore, 100.0)

			sum := cfg.Cost.Panels + cfg.Cost.Inverter + cfg.Cost.Battery + cfg.Cost.Installation
			assert.InDelta(t, sum, cfg.Cost.Total, 1e-9, "total must equal the sum of its parts")
		}

		for i := 1; i < len(res.Recommended); i++ {
			assert.GreaterOrEqual(t, res.Recommended[i-1].Score, res.Recommended[i].Score)
		}
		if len(res.Alternatives) > 0 {
			last := res.Recommended[len(res.Recommended)-1]
			assert.GreaterOrEqual(t, last.Score, res.Alternatives[0].Score)
		}

		assert.GreaterOrEqual(t, res.Summary.ConfigurationCount, len(res.Recommended)+len(res.Alternatives))
		assert.LessOrEqual(t, res.Summary.PriceMin, res.Summary.PriceMax)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := e.Recommend(designRequest(9.2))
		require.NoError(t, err)
		second, err := e.Recommend(designRequest(9.2))
		require.NoError(t, err)

		assert.Equal(t, first.Recommended, second.Recommended)
		assert.Equal(t, first.Alternatives, second.Alternatives)
		assert.Equal(t, first.Summary, second.Summary)
	})

	t.Run("budget constraint is a hard filter", func(t *testing.T) {
		req := designRequest(9.2)
		req.Constraints = &domain.Constraints{MaxBudget: 10000}
		res, err := e.Recommend(req)
		require.NoError(t, err)

		require.NotEmpty(t, res.Recommended)
		for _, cfg := range append(res.Recommended, res.Alternatives...) {
			assert.LessOrEqual(t, cfg.Cost.Total, 10000.0)
		}
	})

	t.Run("warranty constraint excludes short-warranty panels", func(t *testing.T) {
		req := designRequest(9.2)
		req.Constraints = &domain.Constraints{RequiredWarrantyYears: 20}
		res, err := e.Recommend(req)
		require.NoError(t, err)

		require.NotEmpty(t, res.Recommended)
		for _, cfg := range append(res.Recommended, res.Alternatives...) {
			assert.GreaterOrEqual(t, cfg.Panel.Warranty.ProductYears, 20)
		}
	})

	t.Run("undersized roof excludes everything but keeps the summary", func(t *testing.T) {
		req := designRequest(9.2)
		req.Requirements.Installation.RoofAreaM2 = 10
		res, err := e.Recommend(req)
		require.NoError(t, err)

		assert.Empty(t, res.Recommended)
		assert.Empty(t, res.Alternatives)
		assert.Greater(t, res.Summary.ConfigurationCount, 0)
	})

	t.Run("battery preference adds storage to every configuration", func(t *testing.T) {
		req := designRequest(9.2)
		req.Requirements.Preferences.WantsBattery = true
		res, err := e.Recommend(req)
		require.NoError(t, err)

		require.NotEmpty(t, res.Recommended)
		for _, cfg := range res.Recommended {
			require.NotNil(t, cfg.Battery)
			assert.Greater(t, cfg.BatteryCount, 0)
			assert.Greater(t, cfg.Cost.Battery, 0.0)
		}
	})

	t.Run("panel type preference narrows the candidate pool", func(t *testing.T) {
		req := designRequest(9.2)
		req.Requirements.Preferences.PanelType = domain.PanelPolycrystalline
		res, err := e.Recommend(req)
		require.NoError(t, err)

		require.NotEmpty(t, res.Recommended)
		for _, cfg := range append(res.Recommended, res.Alternatives...) {
			assert.Equal(t, domain.PanelPolycrystalline, cfg.Panel.Type)
		}

		broad, err := e.Recommend(designRequest(9.2))
		require.NoError(t, err)
		assert.Less(t, res.Summary.ConfigurationCount, broad.Summary.ConfigurationCount)
	})

	t.Run("unmatched panel type empties the pool", func(t *testing.T) {
		req := designRequest(9.2)
		req.Requirements.Preferences.PanelType = domain.PanelThinFilm
		res, err := e.Recommend(req)
		require.NoError(t, err)

		assert.Empty(t, res.Recommended)
		assert.Zero(t, res.Summary.ConfigurationCount)
	})

	t.Run("empty candidate pool is a soft outcome", func(t *testing.T) {
		req := designRequest(9.2)
		req.Requirements.Preferences.InverterType = domain.InverterCentral
		res, err := e.Recommend(req)
		require.NoError(t, err)

		assert.Empty(t, res.Recommended)
		assert.Zero(t, res.Summary.ConfigurationCount)
		assert.Equal(t, 0.3, res.Metadata.Confidence)
	})
}

func TestMetadata(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Recommend(designRequest(9.2))
	require.NoError(t, err)

	meta := res.Metadata
	assert.NotEmpty(t, meta.RequestID)
	assert.GreaterOrEqual(t, meta.Confidence, 0.0)
	assert.LessOrEqual(t, meta.Confidence, 1.0)
	assert.Equal(t, meta.GeneratedAt.AddDate(0, 0, 30), meta.ValidUntil)
	assert.Contains(t, meta.DecisionFactors, "priority:cost")
}

func TestComponentAlternatives(t *testing.T) {
	e := newTestEngine(t)

	base := domain.RecommendationRequest{
		Type: domain.RequestComponentAlternative,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Priorities:   []string{domain.PriorityCost},
		},
	}

	t.Run("panel alternatives stay in the tolerance band", func(t *testing.T) {
		req := base
		req.ExistingSystem = &domain.ExistingSystem{
			Panels: []domain.ExistingPanel{{Model: "Old-400", Wattage: 400, Efficiency: 20, Count: 23}},
		}
		res, err := e.Recommend(req)
		require.NoError(t, err)
		require.NotNil(t, res.ComponentAlternatives)

		alts := res.ComponentAlternatives.Panels
		require.NotEmpty(t, alts)
		for _, alt := range alts {
			assert.GreaterOrEqual(t, alt.Panel.Wattage, 360.0)
			assert.LessOrEqual(t, alt.Panel.Wattage, 400*1.1)
			assert.GreaterOrEqual(t, alt.Panel.Efficiency, 19.0)
			assert.NotEqual(t, "Old-400", alt.Panel.Model)
			assert.NotEmpty(t, alt.Deltas)
		}
	})

	t.Run("the installed model itself is excluded", func(t *testing.T) {
		req := base
		req.ExistingSystem = &domain.ExistingSystem{
			Panels: []domain.ExistingPanel{{Model: "SolarMax Pro Panel 400", Wattage: 400, Efficiency: 20, Count: 23}},
		}
		res, err := e.Recommend(req)
		require.NoError(t, err)
		for _, alt := range res.ComponentAlternatives.Panels {
			assert.NotEqual(t, "SolarMax Pro Panel 400", alt.Panel.Model)
		}
	})

	t.Run("nothing in the band yields empty lists, not an error", func(t *testing.T) {
		req := base
		req.ExistingSystem = &domain.ExistingSystem{
			Panels: []domain.ExistingPanel{{Model: "Huge-1000", Wattage: 1000, Efficiency: 20, Count: 10}},
		}
		res, err := e.Recommend(req)
		require.NoError(t, err)
		assert.NotNil(t, res.ComponentAlternatives.Panels)
		assert.Empty(t, res.ComponentAlternatives.Panels)
	})

	t.Run("inverter alternatives carry efficiency deltas", func(t *testing.T) {
		req := base
		req.ExistingSystem = &domain.ExistingSystem{
			Inverter: &domain.ExistingInverter{Model: "Old-5000", Capacity: 5000, Efficiency: 95},
		}
		res, err := e.Recommend(req)
		require.NoError(t, err)

		alts := res.ComponentAlternatives.Inverters
		require.NotEmpty(t, alts)
		for _, alt := range alts {
			assert.GreaterOrEqual(t, alt.Inverter.Capacity, 4500.0)
			assert.LessOrEqual(t, alt.Inverter.Capacity, 5000*1.1)
			var hasEff bool
			for _, d := range alt.Deltas {
				if d.Field == "efficiency" {
					hasEff = true
					assert.InDelta(t, alt.Inverter.CECEfficiency-95, d.Delta, 0.01)
				}
			}
			assert.True(t, hasEff)
		}
	})

	t.Run("a missing existing system fails validation", func(t *testing.T) {
		_, err := e.Recommend(base)
		require.Error(t, err)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "existing_system", ve.Fields[0].Field)
	})
}

func TestUpgradePath(t *testing.T) {
	e := newTestEngine(t)

	req := domain.RecommendationRequest{
		Type: domain.RequestUpgradePath,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 4.0,
			Priorities:   []string{domain.PriorityPerformance},
			Preferences: domain.Preferences{
				WantsBattery:   true,
				MonitoringTier: domain.MonitoringAdvanced,
			},
		},
		ExistingSystem: &domain.ExistingSystem{
			Panels:         []domain.ExistingPanel{{Model: "P-250", Wattage: 250, Efficiency: 16.5, Count: 16}},
			Inverter:       &domain.ExistingInverter{Model: "I-3000", Capacity: 3000},
			MonitoringTier: domain.MonitoringBasic,
		},
	}

	res, err := e.Recommend(req)
	require.NoError(t, err)
	require.NotNil(t, res.UpgradePlan)

	plan := res.UpgradePlan
	require.Len(t, plan.Opportunities, 4)

	categories := make(map[string]string)
	for _, opp := range plan.Opportunities {
		categories[opp.Category] = opp.Priority
		assert.Greater(t, opp.InvestmentEstimate, 0.0)
		assert.NotEmpty(t, opp.Description)
	}
	assert.Equal(t, domain.UpgradePriorityHigh, categories[domain.CategoryPanel])
	assert.Equal(t, domain.UpgradePriorityHigh, categories[domain.CategoryInverter])
	assert.Equal(t, domain.UpgradePriorityMedium, categories[domain.CategoryBattery])
	assert.Equal(t, domain.UpgradePriorityLow, categories[domain.CategoryMonitoring])

	require.Len(t, plan.Phases, 3)
	assert.Len(t, plan.Phases[0].Upgrades, 2)
	assert.Len(t, plan.Phases[1].Upgrades, 1)
	assert.Len(t, plan.Phases[2].Upgrades, 1)
}

func TestUpgradePathSkipsHealthySystems(t *testing.T) {
	e := newTestEngine(t)

	req := domain.RecommendationRequest{
		Type: domain.RequestUpgradePath,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Priorities:   []string{domain.PriorityCost},
		},
		ExistingSystem: &domain.ExistingSystem{
			Panels:   []domain.ExistingPanel{{Model: "New-440", Wattage: 440, Efficiency: 22.8, Count: 21}},
			Inverter: &domain.ExistingInverter{Model: "I-9000", Capacity: 9000},
		},
	}

	res, err := e.Recommend(req)
	require.NoError(t, err)
	assert.Empty(t, res.UpgradePlan.Opportunities)
}

func TestCostOptimization(t *testing.T) {
	e := newTestEngine(t)

	req := domain.RecommendationRequest{
		Type: domain.RequestCostOptimization,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Budget:       5000,
			Priorities:   []string{domain.PriorityEfficiency},
		},
	}

	res, err := e.Recommend(req)
	require.NoError(t, err)
	require.NotNil(t, res.CostPlan)

	plan := res.CostPlan
	assert.Greater(t, plan.BaselineCost, 0.0)

	require.NotNil(t, plan.PanelSubstitution)
	assert.Greater(t, plan.PanelSubstitution.Savings, 0.0)
	assert.Less(t, plan.PanelSubstitution.To.PricePerWatt(), plan.PanelSubstitution.From.PricePerWatt())

	require.NotNil(t, plan.RightSizing)
	assert.Less(t, plan.RightSizing.ProposedSizeKW, plan.RightSizing.CurrentSizeKW)
	assert.Greater(t, plan.RightSizing.Savings, 0.0)

	// The 5000 budget is violated, so financing alternatives appear.
	require.Len(t, plan.Financing, 2)
	for _, opt := range plan.Financing {
		assert.Greater(t, opt.MonthlyPayment, 0.0)
	}
	assert.Equal(t, domain.FinancingLoan, plan.Financing[0].Type)
	assert.Equal(t, domain.FinancingPPA, plan.Financing[1].Type)
}

func TestCostOptimizationSurvivesBudgetExclusion(t *testing.T) {
	e := newTestEngine(t)

	// A cap that excludes every 9.2 kW configuration: the plan must
	// still carry a baseline and financing instead of coming back empty.
	req := domain.RecommendationRequest{
		Type: domain.RequestCostOptimization,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Priorities:   []string{domain.PriorityCost},
		},
		Constraints: &domain.Constraints{MaxBudget: 5000},
	}

	res, err := e.Recommend(req)
	require.NoError(t, err)
	require.NotNil(t, res.CostPlan)

	plan := res.CostPlan
	assert.Greater(t, plan.BaselineCost, 5000.0)
	require.NotNil(t, plan.RightSizing)
	assert.Greater(t, plan.RightSizing.Savings, 0.0)

	require.Len(t, plan.Financing, 2)
	for _, opt := range plan.Financing {
		assert.Greater(t, opt.MonthlyPayment, 0.0)
	}
}

func TestCostOptimizationWithinBudgetSkipsFinancing(t *testing.T) {
	e := newTestEngine(t)

	req := domain.RecommendationRequest{
		Type: domain.RequestCostOptimization,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Budget:       50000,
			Priorities:   []string{domain.PriorityCost},
		},
	}

	res, err := e.Recommend(req)
	require.NoError(t, err)
	assert.Empty(t, res.CostPlan.Financing)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		alter func(*domain.RecommendationRequest)
		field string
	}{
		{"missing type", func(r *domain.RecommendationRequest) { r.Type = "" }, "type"},
		{"unknown type", func(r *domain.RecommendationRequest) { r.Type = "magic" }, "type"},
		{"zero system size", func(r *domain.RecommendationRequest) { r.Requirements.SystemSizeKW = 0 }, "requirements.system_size_kw"},
		{"negative budget", func(r *domain.RecommendationRequest) { r.Requirements.Budget = -1 }, "requirements.budget"},
		{"roof pitch out of range", func(r *domain.RecommendationRequest) { r.Requirements.Installation.RoofPitchDeg = 100 }, "requirements.installation.roof_pitch_deg"},
		{"azimuth out of range", func(r *domain.RecommendationRequest) { r.Requirements.Installation.AzimuthDeg = 400 }, "requirements.installation.azimuth_deg"},
		{"unknown shading level", func(r *domain.RecommendationRequest) { r.Requirements.Installation.ShadingLevel = "heavy" }, "requirements.installation.shading_level"},
		{"no priorities", func(r *domain.RecommendationRequest) { r.Requirements.Priorities = nil }, "requirements.priorities"},
		{"unknown priority", func(r *domain.RecommendationRequest) { r.Requirements.Priorities = []string{"speed"} }, "requirements.priorities"},
		{"negative max budget", func(r *domain.RecommendationRequest) {
			r.Constraints = &domain.Constraints{MaxBudget: -10}
		}, "constraints.max_budget"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := designRequest(9.2)
			tc.alter(&req)

			err := Validate(req)
			require.Error(t, err)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)

			var found bool
			for _, f := range ve.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected field %s in %v", tc.field, ve.Fields)
		})
	}

	t.Run("a valid request passes", func(t *testing.T) {
		assert.NoError(t, Validate(designRequest(9.2)))
	})

	t.Run("all failures are reported at once", func(t *testing.T) {
		req := domain.RecommendationRequest{Type: "magic"}
		err := Validate(req)
		require.Error(t, err)
		ve, _ := domain.AsValidationError(err)
		assert.GreaterOrEqual(t, len(ve.Fields), 3)
	})
}
