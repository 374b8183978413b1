// Package compat scores compatibility between equipment pairings on a
// 0-100 scale. Every function here is a pure function of its inputs so
// the rules stay unit-testable with literal fixtures.
package compat

import (
	"fmt"
	"math"

	"solar_marketplace/internal/domain"
)

// Sizing band and tolerance constants. These are domain conventions from
// installer practice, kept as named variables so a deployment can tune
// them without touching rule code.
var (
	// MinInverterRatio is the lowest acceptable inverter-capacity to
	// array-DC-output ratio. Below it the inverter clips production and
	// the pairing is infeasible.
	MinInverterRatio = 0.80

	// MaxInverterRatio is the highest acceptable ratio; above it the
	// inverter capacity is wasted but the pairing remains feasible.
	MaxInverterRatio = 1.20

	// AlternativeTolerance is the relative power/capacity band used when
	// proposing component alternatives.
	AlternativeTolerance = 0.10

	// MinEfficiencyRetention is the fraction of the existing component's
	// efficiency an alternative must retain.
	MinEfficiencyRetention = 0.95
)

// PairResult is the outcome of a single compatibility check. Feasible is
// distinct from Score: a low-scoring feasible pairing is allowed in
// candidate pools, an infeasible one must be excluded from final
// recommendations.
type PairResult struct {
	Score    float64  `json:"score"`
	Feasible bool     `json:"feasible"`
	Ratio    float64  `json:"ratio,omitempty"`
	Issues   []string `json:"issues,omitempty"`
}

// PanelInverter checks an inverter bank against a panel array. The ratio
// compared against the band is total inverter capacity over total array
// DC output.
func PanelInverter(panel domain.Panel, panelCount int, inv domain.Inverter, invCount int) PairResult {
	arrayW := panel.Wattage * float64(panelCount)
	if arrayW <= 0 || invCount <= 0 {
		return PairResult{Score: 0, Feasible: false, Issues: []string{"array or inverter sizing is empty"}}
	}
	ratio := (inv.Capacity * float64(invCount)) / arrayW

	res := PairResult{Ratio: ratio, Feasible: true}
	switch {
	case ratio < MinInverterRatio:
		// Clipping: undersized inverter. Infeasible, score falls with the
		// shortfall below the band.
		res.Feasible = false
		res.Score = clampScore(75 - (MinInverterRatio-ratio)*250)
		res.Issues = append(res.Issues, fmt.Sprintf(
			"inverter capacity is %.0f%% of array output; below the %.0f%% minimum, production would clip",
			ratio*100, MinInverterRatio*100))
	case ratio > MaxInverterRatio:
		res.Score = clampScore(75 - (ratio-MaxInverterRatio)*150)
		res.Issues = append(res.Issues, fmt.Sprintf(
			"inverter capacity is %.0f%% of array output; above the %.0f%% maximum, capacity is wasted",
			ratio*100, MaxInverterRatio*100))
	default:
		// Inside the band: 100 at ideal sizing, 75 at either edge.
		res.Score = 100 - math.Abs(ratio-1)/(MaxInverterRatio-1)*25
	}
	return res
}

// InverterBattery checks storage coupling. A DC-coupled battery behind a
// non-battery-ready inverter needs an extra conversion stage, which costs
// score but is never infeasible on its own.
func InverterBattery(inv domain.Inverter, bat domain.Battery) PairResult {
	res := PairResult{Feasible: true}
	switch {
	case bat.Coupling == domain.CouplingDC && inv.BatteryReady:
		res.Score = 100
	case bat.Coupling == domain.CouplingAC:
		res.Score = 90
	case bat.Coupling == domain.CouplingDC:
		res.Score = 40
		res.Issues = append(res.Issues, fmt.Sprintf(
			"%s is DC-coupled but %s %s is not battery-ready; an external charge controller is required",
			bat.Model, inv.Manufacturer, inv.Model))
	default:
		res.Score = 40
		res.Issues = append(res.Issues, fmt.Sprintf(
			"%s declares no coupling type; pairing with %s %s needs manual review",
			bat.Model, inv.Manufacturer, inv.Model))
	}
	return res
}

// RackingRoof checks a racking family against a roof type. An explicit
// incompatibility scores 0 with a human-readable reason.
func RackingRoof(r domain.RackingSystem, roofType string) PairResult {
	if roofType == "" || len(r.RoofTypes) == 0 {
		return PairResult{Score: 100, Feasible: true}
	}
	for _, rt := range r.RoofTypes {
		if rt == roofType {
			return PairResult{Score: 100, Feasible: true}
		}
	}
	return PairResult{
		Score:    0,
		Feasible: false,
		Issues: []string{fmt.Sprintf(
			"%s racking (%s) is not compatible with %s roofs", r.Model, r.MountType, roofType)},
	}
}

// System aggregates the pairwise checks into one system-level score. The
// battery and racking checks are skipped when those components are
// absent, and their weight is redistributed.
func System(panel domain.Panel, panelCount int, inv domain.Inverter, invCount int,
	bat *domain.Battery, racking *domain.RackingSystem, roofType string) PairResult {

	pi := PanelInverter(panel, panelCount, inv, invCount)

	type weighted struct {
		res    PairResult
		weight float64
	}
	checks := []weighted{{pi, 0.5}}
	if bat != nil {
		checks = append(checks, weighted{InverterBattery(inv, *bat), 0.2})
	}
	if racking != nil {
		checks = append(checks, weighted{RackingRoof(*racking, roofType), 0.3})
	}

	var sum, sumW float64
	out := PairResult{Ratio: pi.Ratio, Feasible: true}
	for _, c := range checks {
		sum += c.res.Score * c.weight
		sumW += c.weight
		out.Issues = append(out.Issues, c.res.Issues...)
		if !c.res.Feasible {
			out.Feasible = false
		}
	}
	out.Score = clampScore(sum / sumW)
	return out
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
