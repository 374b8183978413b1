// Package search implements faceted, free-text search over the equipment
// catalog. Results are deterministic: equal inputs over an unchanged
// catalog always produce the same items in the same order.
package search

import (
	"sort"
	"strings"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/domain"
)

// DefaultPageSize is used when the request does not set one; MaxPageSize
// caps oversized requests.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Options controls sorting, pagination and enrichment.
type Options struct {
	SortBy              string `json:"sort,omitempty"`  // relevance (default), price, wattage, capacity, efficiency, manufacturer
	SortOrder           string `json:"order,omitempty"` // asc or desc
	Page                int    `json:"page,omitempty"`  // 1-indexed
	PageSize            int    `json:"page_size,omitempty"`
	IncludeAlternatives bool   `json:"include_alternatives,omitempty"`
	IncludeCompatible   bool   `json:"include_compatible,omitempty"`
	IncludePricing      bool   `json:"include_pricing,omitempty"`
	IncludeAvailability bool   `json:"include_availability,omitempty"`
}

// Query is a search request. An empty Categories list searches all
// categories; absent filters impose no constraint.
type Query struct {
	Text         string           `json:"query,omitempty"`
	Categories   []string         `json:"category,omitempty"`
	Manufacturer string           `json:"manufacturer,omitempty"`
	Filters      catalog.Criteria `json:"filters,omitempty"`
	Options      Options          `json:"options,omitempty"`
}

// ResultItem is a catalog item plus optional enrichment annotations.
type ResultItem struct {
	catalog.Item
	Relevance    float64                 `json:"relevance,omitempty"`
	Alternatives []catalog.Item          `json:"alternatives,omitempty"`
	Compatible   *CompatibleAnnotation   `json:"compatible,omitempty"`
	Pricing      *PricingAnnotation      `json:"pricing,omitempty"`
	Availability *AvailabilityAnnotation `json:"availability_info,omitempty"`
}

// Result is one page of matches. Total counts every match before
// pagination.
type Result struct {
	Docs     []ResultItem `json:"docs"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	HasMore  bool         `json:"has_more"`
}

// Engine runs searches against an immutable catalog snapshot.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine builds a search engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Search validates the query, filters, sorts, paginates and enriches.
// Enrichment annotations are only computed for the returned page, and
// only when their flag is set.
func (e *Engine) Search(q Query) (Result, error) {
	if err := validateQuery(q); err != nil {
		return Result{}, err
	}

	items := e.cat.Items(q.Categories)

	tokens := tokenize(q.Text)
	matched := make([]ResultItem, 0, len(items))
	for _, it := range items {
		if q.Manufacturer != "" && !strings.EqualFold(it.Manufacturer, q.Manufacturer) {
			continue
		}
		if !catalog.MatchItem(it, q.Filters) {
			continue
		}
		rel, ok := relevance(it, tokens)
		if !ok {
			continue
		}
		matched = append(matched, ResultItem{Item: it, Relevance: rel})
	}

	sortItems(matched, q.Options.SortBy, q.Options.SortOrder)

	page, size := normalizePage(q.Options)
	start := (page - 1) * size
	end := start + size
	total := len(matched)

	var docs []ResultItem
	if start < total {
		if end > total {
			end = total
		}
		docs = matched[start:end]
	} else {
		docs = []ResultItem{}
	}

	for i := range docs {
		e.enrich(&docs[i], q.Options)
	}

	return Result{
		Docs:     docs,
		Total:    total,
		Page:     page,
		PageSize: size,
		HasMore:  end < total,
	}, nil
}

func validateQuery(q Query) error {
	ve := &domain.ValidationError{}
	known := make(map[string]bool)
	for _, c := range domain.AllCategories() {
		known[c] = true
	}
	for _, c := range q.Categories {
		if !known[c] {
			ve.Addf("category", "unknown equipment category %q", c)
		}
	}
	if q.Options.Page < 0 {
		ve.Add("options.page", "page must be 1 or greater")
	}
	if q.Options.PageSize < 0 {
		ve.Add("options.page_size", "page size must be positive")
	}
	switch q.Options.SortOrder {
	case "", "asc", "desc":
	default:
		ve.Addf("options.order", "unknown sort order %q", q.Options.SortOrder)
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func normalizePage(o Options) (page, size int) {
	page = o.Page
	if page < 1 {
		page = 1
	}
	size = o.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// tokenize lower-cases and splits the free-text query.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Field weights for relevance. Model matches outrank manufacturer
// matches, which outrank description matches.
const (
	weightModel        = 3.0
	weightManufacturer = 2.0
	weightDescription  = 1.0
	weightCategory     = 0.5
)

// relevance scores an item against the query tokens. Token-AND
// semantics: every token must match at least one field, so "solar panel"
// matches "SolarMax Pro Panel" through its model and category fields.
func relevance(it catalog.Item, tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return 0, true
	}
	model := strings.ToLower(it.Model)
	manufacturer := strings.ToLower(it.Manufacturer)
	description := strings.ToLower(it.Description)

	var score float64
	for _, tok := range tokens {
		var tokScore float64
		if strings.Contains(model, tok) {
			tokScore += weightModel
		}
		if strings.Contains(manufacturer, tok) {
			tokScore += weightManufacturer
		}
		if strings.Contains(description, tok) {
			tokScore += weightDescription
		}
		if strings.Contains(it.Category, tok) {
			tokScore += weightCategory
		}
		if tokScore == 0 {
			return 0, false
		}
		score += tokScore
	}
	return score, true
}

// sortItems orders matches. Relevance sorting is text score descending
// then ID; field sorts fall back to ID on ties so output stays
// reproducible across runs.
func sortItems(items []ResultItem, sortBy, order string) {
	desc := order == "desc"
	var less func(a, b ResultItem) bool

	switch sortBy {
	case "", "relevance":
		sort.Slice(items, func(i, j int) bool {
			if items[i].Relevance != items[j].Relevance {
				return items[i].Relevance > items[j].Relevance
			}
			return items[i].ID < items[j].ID
		})
		return
	case "price":
		less = func(a, b ResultItem) bool { return a.Price < b.Price }
	case "wattage":
		less = func(a, b ResultItem) bool { return a.Wattage < b.Wattage }
	case "capacity":
		less = func(a, b ResultItem) bool { return a.CapacityW+a.CapacityKWh < b.CapacityW+b.CapacityKWh }
	case "efficiency":
		less = func(a, b ResultItem) bool { return a.Efficiency < b.Efficiency }
	case "manufacturer":
		less = func(a, b ResultItem) bool { return a.Manufacturer < b.Manufacturer }
	default:
		less = func(a, b ResultItem) bool { return a.ID < b.ID }
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if less(a, b) != less(b, a) {
			if desc {
				return less(b, a)
			}
			return less(a, b)
		}
		return a.ID < b.ID
	})
}
