package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/config"
	"solar_marketplace/internal/domain"
	"solar_marketplace/internal/search"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:          8080,
		CatalogSource:       config.CatalogSeed,
		YieldFactor:         1350,
		InstallationMarkup:  0.30,
		SpacingFactor:       1.4,
		BatterySizingFactor: 1.5,
		RecommendedCount:    3,
		AlternativeCount:    3,
		ValidityDays:        30,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.New(catalog.SeedData())
	require.NoError(t, err)
	svc := New(cat, testConfig())
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestServiceSearch(t *testing.T) {
	svc := newTestService(t)

	t.Run("delegates to the engine", func(t *testing.T) {
		res, err := svc.Search(search.Query{Text: "solarmax"})
		require.NoError(t, err)
		assert.Greater(t, res.Total, 0)
	})

	t.Run("repeat queries hit the cache", func(t *testing.T) {
		q := search.Query{Text: "inverter"}
		first, err := svc.Search(q)
		require.NoError(t, err)

		before := svc.searchCache.Size()
		second, err := svc.Search(q)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, before, svc.searchCache.Size())
	})

	t.Run("validation failures count as failed requests", func(t *testing.T) {
		_, err := svc.Search(search.Query{Categories: []string{"widgets"}})
		require.Error(t, err)

		stats := svc.Stats()
		assert.Greater(t, stats["failed"].(uint64), uint64(0))
	})
}

func TestServiceRecommend(t *testing.T) {
	svc := newTestService(t)

	req := domain.RecommendationRequest{
		Type: domain.RequestSystemDesign,
		Requirements: domain.SystemRequirements{
			SystemSizeKW: 9.2,
			Priorities:   []string{domain.PriorityCost},
		},
	}

	t.Run("generates a result", func(t *testing.T) {
		res, err := svc.Recommend(req)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestSystemDesign, res.Type)
		assert.NotEmpty(t, res.Recommended)
	})

	t.Run("identical requests are served from the cache", func(t *testing.T) {
		first, err := svc.Recommend(req)
		require.NoError(t, err)
		second, err := svc.Recommend(req)
		require.NoError(t, err)

		// Cached results are the same object, request id included.
		assert.Equal(t, first.Metadata.RequestID, second.Metadata.RequestID)
	})

	t.Run("invalid request surfaces the validation error", func(t *testing.T) {
		bad := req
		bad.Requirements.SystemSizeKW = 0
		_, err := svc.Recommend(bad)
		require.Error(t, err)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestServiceEquipment(t *testing.T) {
	svc := newTestService(t)

	t.Run("lists a known category", func(t *testing.T) {
		items, err := svc.Equipment(domain.CategoryPanel, catalog.Criteria{Tier: 1})
		require.NoError(t, err)
		panels, ok := items.([]domain.Panel)
		require.True(t, ok)
		assert.NotEmpty(t, panels)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, err := svc.Equipment("widgets", catalog.Criteria{})
		require.Error(t, err)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "category", ve.Fields[0].Field)
	})
}

func TestServiceStats(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Search(search.Query{})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, uint64(1), stats["requests"])
	assert.Equal(t, uint64(1), stats["served"])
	assert.Equal(t, uint64(0), stats["failed"])
	assert.Equal(t, 100.0, stats["success_rate"])

	catalogCounts, ok := stats["catalog"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 7, catalogCounts[domain.CategoryPanel])
}
