package recommend

import (
	"math"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/domain"
)

// Financing defaults. Nominal market figures, not advice; the analysis
// carries no financial or legal accuracy guarantee.
var (
	LoanTermYears = 20
	LoanAPR       = 0.065
	PPARatePerKWh = 0.12
	RightSizeCut  = 0.15
)

// costOptimization reuses the system_design generator to establish a
// baseline, then proposes a value-tier substitution, a right-sizing cut
// and, when the budget is violated, alternative financing structures.
func (e *Engine) costOptimization(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	design, err := e.systemDesign(req)
	if err != nil {
		return nil, err
	}

	// When the budget cap alone empties the pool, rebuild the baseline
	// without it; this mode exists to close exactly that gap, so the
	// substitution and financing analysis must still run.
	if len(design.Recommended) == 0 && req.Constraints != nil && req.Constraints.MaxBudget > 0 {
		relaxed := req
		c := *req.Constraints
		c.MaxBudget = 0
		relaxed.Constraints = &c
		if unconstrained, uerr := e.systemDesign(relaxed); uerr == nil {
			design = unconstrained
		}
	}

	plan := &domain.CostOptimization{}
	res := &domain.RecommendationResult{CostPlan: plan, Summary: design.Summary}

	if len(design.Recommended) == 0 {
		// Empty candidate pool is a soft outcome; the caller renders it
		// as "no matches".
		return res, nil
	}
	baseline := design.Recommended[0]
	plan.BaselineCost = baseline.Cost.Total

	if sub := e.valueSubstitution(req.Requirements, baseline); sub != nil {
		plan.PanelSubstitution = sub
	}

	plan.RightSizing = &domain.RightSizing{
		CurrentSizeKW:  baseline.ActualSizeKW,
		ProposedSizeKW: round2(baseline.ActualSizeKW * (1 - RightSizeCut)),
		Savings:        round2(baseline.Cost.Total * RightSizeCut),
	}

	if budget := effectiveBudget(req); budget > 0 && baseline.Cost.Total > budget {
		plan.Financing = financingOptions(baseline)
	}
	return res, nil
}

// valueSubstitution looks for a cheaper panel on a $/W basis that still
// keeps a workable efficiency, and prices the swap at the baseline panel
// count with the markup applied.
func (e *Engine) valueSubstitution(r domain.SystemRequirements, baseline domain.SystemConfiguration) *domain.PanelSubstitution {
	current := baseline.Panel
	var best *domain.Panel
	for _, p := range e.cat.Panels(catalog.Criteria{}) {
		if p.ID == current.ID || p.Availability == domain.AvailabilityDiscontinued {
			continue
		}
		if p.PricePerWatt() >= current.PricePerWatt() {
			continue
		}
		if best == nil || p.PricePerWatt() < best.PricePerWatt() ||
			(p.PricePerWatt() == best.PricePerWatt() && p.ID < best.ID) {
			pp := p
			best = &pp
		}
	}
	if best == nil {
		return nil
	}

	count := int(math.Ceil(r.SystemSizeKW * 1000 / best.Wattage))
	currentPanels := current.Price * float64(baseline.PanelCount)
	proposedPanels := best.Price * float64(count)
	savings := (currentPanels - proposedPanels) * (1 + e.params.InstallationMarkup)
	if savings <= 0 {
		return nil
	}
	return &domain.PanelSubstitution{
		From:    current,
		To:      *best,
		Savings: round2(savings),
	}
}

func effectiveBudget(req domain.RecommendationRequest) float64 {
	if req.Constraints != nil && req.Constraints.MaxBudget > 0 {
		return req.Constraints.MaxBudget
	}
	return req.Requirements.Budget
}

func financingOptions(baseline domain.SystemConfiguration) []domain.FinancingOption {
	return []domain.FinancingOption{
		{
			Type:           domain.FinancingLoan,
			Description:    "Secured solar loan, system owned by the homeowner",
			TermYears:      LoanTermYears,
			APR:            LoanAPR,
			MonthlyPayment: round2(amortizedPayment(baseline.Cost.Total, LoanAPR, LoanTermYears)),
		},
		{
			Type:           domain.FinancingPPA,
			Description:    "Power-purchase agreement, third party owns the system and sells its output",
			RatePerKWh:     PPARatePerKWh,
			MonthlyPayment: round2(baseline.Performance.AnnualProductionKWh / 12 * PPARatePerKWh),
		},
	}
}

// amortizedPayment is the standard fixed-rate monthly payment formula.
func amortizedPayment(principal, apr float64, termYears int) float64 {
	n := float64(termYears * 12)
	if apr <= 0 {
		return principal / n
	}
	r := apr / 12
	return principal * r / (1 - math.Pow(1+r, -n))
}
