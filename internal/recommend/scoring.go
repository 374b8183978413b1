package recommend

import (
	"math"

	"solar_marketplace/internal/domain"
)

// Weights are the coefficients of the single configuration scoring
// function shared by every recommendation mode. Base factors always
// contribute; priority factors contribute only when the caller lists
// the matching priority.
type Weights struct {
	PanelEfficiency    float64 `json:"panel_efficiency"`
	BrandTier          float64 `json:"brand_tier"`
	InverterEfficiency float64 `json:"inverter_efficiency"`

	Cost        float64 `json:"cost"`
	Efficiency  float64 `json:"efficiency"`
	Reliability float64 `json:"reliability"`
	Aesthetics  float64 `json:"aesthetics"`
	Performance float64 `json:"performance"`
}

// DefaultWeights returns the baseline coefficients.
func DefaultWeights() Weights {
	return Weights{
		PanelEfficiency:    1.0,
		BrandTier:          0.8,
		InverterEfficiency: 0.6,
		Cost:               1.0,
		Efficiency:         0.9,
		Reliability:        0.9,
		Aesthetics:         0.6,
		Performance:        0.8,
	}
}

// Normalization anchors for factor values. Values outside the anchors
// clamp to 0 or 1.
const (
	panelEffFloor   = 15.0
	panelEffCeil    = 23.0
	cecEffFloor     = 94.0
	cecEffCeil      = 99.0
	pricePerWattLo  = 1.8 // installed $/W considered excellent
	pricePerWattHi  = 4.0 // installed $/W considered poor
	warrantyCeilYrs = 25.0
)

// scoreConfiguration computes the composite 0-100 ranking score. Base
// factors reward panel efficiency, brand tier and inverter efficiency;
// each caller priority adds a weighted factor, with earlier priorities
// weighing more.
func scoreConfiguration(cfg domain.SystemConfiguration, req domain.SystemRequirements, w Weights) float64 {
	type factor struct {
		weight float64
		value  float64 // 0..1
	}

	factors := []factor{
		{w.PanelEfficiency, norm(cfg.Panel.Efficiency, panelEffFloor, panelEffCeil)},
		{w.BrandTier, tierValue(cfg.Panel.Tier)},
		{w.InverterEfficiency, norm(cfg.Inverter.CECEfficiency, cecEffFloor, cecEffCeil)},
	}

	for i, p := range req.Priorities {
		pw := priorityWeight(i)
		switch p {
		case domain.PriorityCost:
			// Lower price per watt is better.
			factors = append(factors, factor{w.Cost * pw, 1 - norm(cfg.Cost.PricePerWatt, pricePerWattLo, pricePerWattHi)})
		case domain.PriorityEfficiency:
			factors = append(factors, factor{w.Efficiency * pw, norm(cfg.Panel.Efficiency, panelEffFloor, panelEffCeil)})
		case domain.PriorityReliability:
			factors = append(factors, factor{w.Reliability * pw, norm(float64(cfg.Panel.Warranty.ProductYears), 0, warrantyCeilYrs)})
		case domain.PriorityAesthetics:
			factors = append(factors, factor{w.Aesthetics * pw, aestheticsValue(cfg, req.Preferences)})
		case domain.PriorityPerformance:
			factors = append(factors, factor{w.Performance * pw, performanceValue(cfg)})
		}
	}

	var sum, sumW float64
	for _, f := range factors {
		if f.weight <= 0 {
			continue
		}
		sum += f.weight * f.value
		sumW += f.weight
	}
	if sumW <= 0 {
		return 50
	}

	score := sum / sumW * 100
	return math.Round(clamp(score, 0, 100)*10) / 10
}

// priorityWeight decays with list position so the first stated priority
// dominates later ones.
func priorityWeight(index int) float64 {
	w := 1.0 - 0.2*float64(index)
	if w < 0.2 {
		return 0.2
	}
	return w
}

func tierValue(tier int) float64 {
	switch tier {
	case 1:
		return 1.0
	case 2:
		return 0.6
	case 3:
		return 0.3
	default:
		return 0.2
	}
}

func aestheticsValue(cfg domain.SystemConfiguration, prefs domain.Preferences) float64 {
	v := 0.3
	if cfg.Panel.AllBlack {
		v += 0.5
	}
	if cfg.Inverter.Type == domain.InverterMicro {
		v += 0.2
	}
	// An explicit all-black preference makes visible-frame panels a
	// miss, not just a weaker match.
	if prefs.Aesthetics == domain.AestheticsAllBlack && !cfg.Panel.AllBlack {
		v = 0
	}
	return clamp(v, 0, 1)
}

func performanceValue(cfg domain.SystemConfiguration) float64 {
	if cfg.ActualSizeKW <= 0 {
		return 0
	}
	// Specific yield relative to the unshaded baseline, blended with the
	// performance ratio.
	specific := cfg.Performance.AnnualProductionKWh / cfg.ActualSizeKW
	return clamp(0.6*norm(specific, 900, 1500)+0.4*cfg.Performance.PerformanceRatio, 0, 1)
}

func norm(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp((v-lo)/(hi-lo), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
