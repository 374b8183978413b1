package recommend

import "solar_marketplace/internal/domain"

// Validate checks a recommendation request before any catalog access.
// It returns nil or a *domain.ValidationError naming every failing
// field, so a form can highlight all of them at once.
func Validate(req domain.RecommendationRequest) error {
	ve := &domain.ValidationError{}

	switch req.Type {
	case domain.RequestSystemDesign, domain.RequestComponentAlternative,
		domain.RequestUpgradePath, domain.RequestCostOptimization:
	case "":
		ve.Add("type", "request type is required")
	default:
		ve.Addf("type", "unknown request type %q", req.Type)
	}

	r := req.Requirements
	if r.SystemSizeKW <= 0 {
		ve.Add("requirements.system_size_kw", "system size must be greater than zero")
	}
	if r.Budget < 0 {
		ve.Add("requirements.budget", "budget must be greater than zero when set")
	}

	inst := r.Installation
	if inst.RoofAreaM2 < 0 {
		ve.Add("requirements.installation.roof_area_m2", "roof area must be greater than zero when set")
	}
	if inst.RoofPitchDeg < 0 || inst.RoofPitchDeg > 90 {
		ve.Add("requirements.installation.roof_pitch_deg", "roof pitch must be between 0 and 90 degrees")
	}
	if inst.AzimuthDeg < 0 || inst.AzimuthDeg > 360 {
		ve.Add("requirements.installation.azimuth_deg", "azimuth must be between 0 and 360 degrees")
	}
	switch inst.ShadingLevel {
	case "", domain.ShadingNone, domain.ShadingMinimal, domain.ShadingModerate, domain.ShadingSignificant:
	default:
		ve.Addf("requirements.installation.shading_level", "unknown shading level %q", inst.ShadingLevel)
	}

	if len(r.Priorities) == 0 {
		ve.Add("requirements.priorities", "at least one priority is required")
	}
	for _, p := range r.Priorities {
		switch p {
		case domain.PriorityCost, domain.PriorityEfficiency, domain.PriorityReliability,
			domain.PriorityAesthetics, domain.PriorityPerformance:
		default:
			ve.Addf("requirements.priorities", "unknown priority %q", p)
		}
	}

	if req.Type == domain.RequestComponentAlternative {
		if req.ExistingSystem == nil {
			ve.Add("existing_system", "an existing system snapshot is required for component_alternative")
		} else if len(req.ExistingSystem.Panels) == 0 && req.ExistingSystem.Inverter == nil && req.ExistingSystem.Battery == nil {
			ve.Add("existing_system", "the existing system snapshot has no components")
		}
	}

	if c := req.Constraints; c != nil {
		if c.MaxBudget < 0 {
			ve.Add("constraints.max_budget", "max budget must be greater than zero when set")
		}
		if c.MaxPaybackYears < 0 {
			ve.Add("constraints.max_payback_years", "max payback must be greater than zero when set")
		}
		if c.RequiredWarrantyYears < 0 {
			ve.Add("constraints.required_warranty_years", "required warranty must be greater than zero when set")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
