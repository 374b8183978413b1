// Package recommend orchestrates search and compatibility into ranked
// system recommendations. The pipeline is linear for every request type:
// validate input, gather candidates per category, generate
// configurations, score and rank, summarize.
package recommend

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/domain"
)

// Engine generates recommendations over an immutable catalog snapshot.
type Engine struct {
	cat     *catalog.Catalog
	params  Params
	weights Weights
}

// NewEngine builds a recommendation engine.
func NewEngine(cat *catalog.Catalog, params Params, weights Weights) *Engine {
	return &Engine{cat: cat, params: params, weights: weights}
}

// Recommend runs the pipeline for the request type. Validation failures
// return a *domain.ValidationError before any catalog access; an empty
// candidate pool is not an error and yields empty lists with a zero
// summary.
func (e *Engine) Recommend(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	var (
		res *domain.RecommendationResult
		err error
	)
	switch req.Type {
	case domain.RequestSystemDesign:
		res, err = e.systemDesign(req)
	case domain.RequestComponentAlternative:
		res, err = e.componentAlternatives(req)
	case domain.RequestUpgradePath:
		res, err = e.upgradePath(req)
	case domain.RequestCostOptimization:
		res, err = e.costOptimization(req)
	default:
		// Unreachable after validation.
		err = fmt.Errorf("unhandled request type %q", req.Type)
	}
	if err != nil {
		return nil, err
	}

	res.Type = req.Type
	res.Metadata = e.metadata(req, res)
	return res, nil
}

func (e *Engine) metadata(req domain.RecommendationRequest, res *domain.RecommendationResult) domain.Metadata {
	now := time.Now().UTC()

	factors := make([]string, 0, len(req.Requirements.Priorities)+1)
	for _, p := range req.Requirements.Priorities {
		factors = append(factors, "priority:"+p)
	}
	if req.Requirements.Budget > 0 {
		factors = append(factors, "budget-constrained")
	}
	if req.Requirements.Installation.RoofAreaM2 > 0 {
		factors = append(factors, "roof-area-checked")
	}

	return domain.Metadata{
		RequestID:       uuid.NewString(),
		Confidence:      confidence(res),
		DecisionFactors: factors,
		GeneratedAt:     now,
		ValidUntil:      now.AddDate(0, 0, e.params.ValidityDays),
	}
}

// confidence grows with the breadth of the candidate pool the ranking
// had to choose from.
func confidence(res *domain.RecommendationResult) float64 {
	n := res.Summary.ConfigurationCount
	switch {
	case n >= 10:
		return 0.9
	case n >= 5:
		return 0.8
	case n >= 2:
		return 0.7
	case n == 1:
		return 0.6
	default:
		return 0.3
	}
}

// summarize aggregates ranges over every generated configuration, not
// just the returned subset. An empty pool yields the zero summary.
func summarize(configs []domain.SystemConfiguration) domain.Summary {
	s := domain.Summary{ConfigurationCount: len(configs)}
	for i, c := range configs {
		if i == 0 {
			s.PriceMin, s.PriceMax = c.Cost.Total, c.Cost.Total
			s.EfficiencyMin, s.EfficiencyMax = c.Panel.Efficiency, c.Panel.Efficiency
			s.AnnualProductionMin, s.AnnualProductionMax = c.Performance.AnnualProductionKWh, c.Performance.AnnualProductionKWh
			continue
		}
		if c.Cost.Total < s.PriceMin {
			s.PriceMin = c.Cost.Total
		}
		if c.Cost.Total > s.PriceMax {
			s.PriceMax = c.Cost.Total
		}
		if c.Panel.Efficiency < s.EfficiencyMin {
			s.EfficiencyMin = c.Panel.Efficiency
		}
		if c.Panel.Efficiency > s.EfficiencyMax {
			s.EfficiencyMax = c.Panel.Efficiency
		}
		if p := c.Performance.AnnualProductionKWh; p < s.AnnualProductionMin {
			s.AnnualProductionMin = p
		}
		if p := c.Performance.AnnualProductionKWh; p > s.AnnualProductionMax {
			s.AnnualProductionMax = p
		}
	}
	return s
}
