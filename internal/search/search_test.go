package search

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
	return NewEngine(cat)
}

func docIDs(res Result) []string {
	ids := make([]string, 0, len(res.Docs))
	for _, d := range res.Docs {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestSearchDeterminism(t *testing.T) {
	e := newTestEngine(t)
	q := Query{Text: "solar", Options: Options{PageSize: 50}}

	first, err := e.Search(q)
	require.NoError(t, err)
	second, err := e.Search(q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchFiltering(t *testing.T) {
	e := newTestEngine(t)

	t.Run("empty query returns the whole catalog", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{PageSize: 100}})
		require.NoError(t, err)
		assert.Equal(t, 23, res.Total)
	})

	t.Run("category filter restricts results", func(t *testing.T) {
		res, err := e.Search(Query{Categories: []string{domain.CategoryInverter}})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		for _, d := range res.Docs {
			assert.Equal(t, domain.CategoryInverter, d.Category)
		}
	})

	t.Run("manufacturer filter is case-insensitive", func(t *testing.T) {
		res, err := e.Search(Query{Manufacturer: "sma"})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		for _, d := range res.Docs {
			assert.Equal(t, "SMA", d.Manufacturer)
		}
	})

	t.Run("adding a filter never adds results", func(t *testing.T) {
		broad, err := e.Search(Query{Categories: []string{domain.CategoryPanel}, Options: Options{PageSize: 100}})
		require.NoError(t, err)
		narrow, err := e.Search(Query{
			Categories: []string{domain.CategoryPanel},
			Filters:    catalog.Criteria{MinEfficiency: 20},
			Options:    Options{PageSize: 100},
		})
		require.NoError(t, err)

		assert.LessOrEqual(t, narrow.Total, broad.Total)
		broadIDs := make(map[string]bool)
		for _, id := range docIDs(broad) {
			broadIDs[id] = true
		}
		for _, id := range docIDs(narrow) {
			assert.True(t, broadIDs[id], "narrowed result %s missing from broad result", id)
		}
	})

	t.Run("unsatisfiable filter returns an empty result, not an error", func(t *testing.T) {
		res, err := e.Search(Query{
			Categories: []string{domain.CategoryPanel},
			Filters:    catalog.Criteria{MinEfficiency: 25},
		})
		require.NoError(t, err)
		assert.Empty(t, res.Docs)
		assert.Zero(t, res.Total)
		assert.False(t, res.HasMore)
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		_, err := e.Search(Query{Categories: []string{"widgets"}})
		require.Error(t, err)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "category", ve.Fields[0].Field)
	})
}

func TestSearchRelevance(t *testing.T) {
	e := newTestEngine(t)

	t.Run("text match finds the model", func(t *testing.T) {
		res, err := e.Search(Query{Text: "solarmax"})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		assert.Contains(t, docIDs(res), "pnl-solarmax-pro400")
		assert.Greater(t, res.Docs[0].Relevance, 0.0)
	})

	t.Run("every token must match", func(t *testing.T) {
		res, err := e.Search(Query{Text: "solarmax zzzz"})
		require.NoError(t, err)
		assert.Zero(t, res.Total)
		assert.Empty(t, res.Docs)
	})

	t.Run("results are ordered by relevance then id", func(t *testing.T) {
		res, err := e.Search(Query{Text: "inverter", Options: Options{PageSize: 100}})
		require.NoError(t, err)
		for i := 1; i < len(res.Docs); i++ {
			prev, cur := res.Docs[i-1], res.Docs[i]
			if prev.Relevance == cur.Relevance {
				assert.Less(t, prev.ID, cur.ID)
			} else {
				assert.Greater(t, prev.Relevance, cur.Relevance)
			}
		}
	})
}

func TestSearchSorting(t *testing.T) {
	e := newTestEngine(t)

	t.Run("price ascending", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{SortBy: "price", SortOrder: "asc", PageSize: 100}})
		require.NoError(t, err)
		for i := 1; i < len(res.Docs); i++ {
			assert.LessOrEqual(t, res.Docs[i-1].Price, res.Docs[i].Price)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{SortBy: "price", SortOrder: "desc", PageSize: 100}})
		require.NoError(t, err)
		for i := 1; i < len(res.Docs); i++ {
			assert.GreaterOrEqual(t, res.Docs[i-1].Price, res.Docs[i].Price)
		}
	})

	t.Run("unknown sort order fails validation", func(t *testing.T) {
		_, err := e.Search(Query{Options: Options{SortOrder: "sideways"}})
		require.Error(t, err)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestSearchPagination(t *testing.T) {
	e := newTestEngine(t)

	t.Run("concatenated pages reproduce the unpaginated order", func(t *testing.T) {
		full, err := e.Search(Query{Options: Options{PageSize: 100}})
		require.NoError(t, err)

		var paged []string
		for page := 1; ; page++ {
			res, err := e.Search(Query{Options: Options{Page: page, PageSize: 4}})
			require.NoError(t, err)
			paged = append(paged, docIDs(res)...)
			if !res.HasMore {
				break
			}
		}
		assert.Equal(t, docIDs(full), paged)
	})

	t.Run("page beyond the range is empty but keeps the total", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{Page: 99, PageSize: 10}})
		require.NoError(t, err)
		assert.Empty(t, res.Docs)
		assert.Equal(t, 23, res.Total)
		assert.False(t, res.HasMore)
	})

	t.Run("oversized page size is capped", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{PageSize: 1000}})
		require.NoError(t, err)
		assert.Equal(t, MaxPageSize, res.PageSize)
	})

	t.Run("negative page fails validation", func(t *testing.T) {
		_, err := e.Search(Query{Options: Options{Page: -1}})
		require.Error(t, err)
	})
}

func TestSearchEnrichment(t *testing.T) {
	e := newTestEngine(t)

	t.Run("annotations are absent unless requested", func(t *testing.T) {
		res, err := e.Search(Query{Categories: []string{domain.CategoryPanel}})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		for _, d := range res.Docs {
			assert.Nil(t, d.Alternatives)
			assert.Nil(t, d.Compatible)
			assert.Nil(t, d.Pricing)
			assert.Nil(t, d.Availability)
		}
	})

	t.Run("pricing annotation", func(t *testing.T) {
		res, err := e.Search(Query{
			Categories: []string{domain.CategoryPanel},
			Options:    Options{IncludePricing: true},
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		for _, d := range res.Docs {
			require.NotNil(t, d.Pricing)
			assert.Equal(t, d.Price, d.Pricing.Price)
			assert.InDelta(t, d.Price/d.Wattage, d.Pricing.PricePerWatt, 1e-9)
		}
	})

	t.Run("availability annotation maps status to lead time", func(t *testing.T) {
		res, err := e.Search(Query{Options: Options{IncludeAvailability: true, PageSize: 100}})
		require.NoError(t, err)
		for _, d := range res.Docs {
			require.NotNil(t, d.Availability)
			switch d.Availability.Status {
			case domain.AvailabilityInStock:
				assert.Equal(t, 7, d.Availability.LeadTimeDays)
				assert.True(t, d.Availability.Orderable)
			case domain.AvailabilityBackorder:
				assert.Equal(t, 45, d.Availability.LeadTimeDays)
				assert.True(t, d.Availability.Orderable)
			default:
				assert.False(t, d.Availability.Orderable)
			}
		}
	})

	t.Run("alternatives stay within the tolerance band", func(t *testing.T) {
		res, err := e.Search(Query{
			Text:       "solarmax",
			Categories: []string{domain.CategoryPanel},
			Options:    Options{IncludeAlternatives: true},
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		doc := res.Docs[0]
		for _, alt := range doc.Alternatives {
			assert.NotEqual(t, doc.ID, alt.ID)
			assert.GreaterOrEqual(t, alt.Wattage, doc.Wattage*0.9-1e-9)
			assert.LessOrEqual(t, alt.Wattage, doc.Wattage*1.1+1e-9)
		}
	})

	t.Run("compatible annotation lists in-band inverters for a panel", func(t *testing.T) {
		res, err := e.Search(Query{
			Text:       "solarmax",
			Categories: []string{domain.CategoryPanel},
			Options:    Options{IncludeCompatible: true},
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Docs)
		require.NotNil(t, res.Docs[0].Compatible)
		assert.NotEmpty(t, res.Docs[0].Compatible.Inverters)
	})
}
