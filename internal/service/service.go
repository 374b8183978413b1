package service

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/config"
	"solar_marketplace/internal/domain"
	"solar_marketplace/internal/recommend"
	"solar_marketplace/internal/search"
	"solar_marketplace/pkg/logger"
)

// Cache TTLs. Search results change only when the catalog reloads, so
// short TTLs exist mainly to bound memory.
const (
	searchCacheTTL    = 30 * time.Second
	recommendCacheTTL = 60 * time.Second
	cleanupInterval   = time.Minute
)

// Service wires the catalog, search and recommendation engines behind
// request-signature caches and lock-free statistics.
type Service struct {
	cfg *config.Config
	cat *catalog.Catalog

	search    *search.Engine
	recommend *recommend.Engine

	searchCache    *Cache
	recommendCache *Cache

	requestCount uint64
	servedCount  uint64
	failedCount  uint64
}

// New builds the service around an already-loaded catalog snapshot.
func New(cat *catalog.Catalog, cfg *config.Config) *Service {
	params := recommend.Params{
		YieldFactor:         cfg.YieldFactor,
		InstallationMarkup:  cfg.InstallationMarkup,
		SpacingFactor:       cfg.SpacingFactor,
		BatterySizingFactor: cfg.BatterySizingFactor,
		RecommendedCount:    cfg.RecommendedCount,
		AlternativeCount:    cfg.AlternativeCount,
		ValidityDays:        cfg.ValidityDays,
	}

	svc := &Service{
		cfg:            cfg,
		cat:            cat,
		search:         search.NewEngine(cat),
		recommend:      recommend.NewEngine(cat, params, recommend.DefaultWeights()),
		searchCache:    NewCache(cleanupInterval),
		recommendCache: NewCache(cleanupInterval),
	}

	counts := cat.Counts()
	logger.Infof("Service initialized (catalog: %d panels, %d inverters, %d batteries)",
		counts[domain.CategoryPanel], counts[domain.CategoryInverter], counts[domain.CategoryBattery])
	return svc
}

// Search runs a catalog search, serving repeats from the cache.
func (svc *Service) Search(q search.Query) (search.Result, error) {
	atomic.AddUint64(&svc.requestCount, 1)

	key := signature("search", q)
	if key != "" {
		if cached, found := svc.searchCache.Get(key); found {
			atomic.AddUint64(&svc.servedCount, 1)
			return cached.(search.Result), nil
		}
	}

	res, err := svc.search.Search(q)
	if err != nil {
		atomic.AddUint64(&svc.failedCount, 1)
		return search.Result{}, err
	}

	if key != "" {
		svc.searchCache.Set(key, res, searchCacheTTL)
	}
	atomic.AddUint64(&svc.servedCount, 1)
	return res, nil
}

// Recommend runs the recommendation pipeline, serving repeats from the
// cache. The computation is deterministic, so a cached result is
// identical to a fresh one apart from its request id.
func (svc *Service) Recommend(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	atomic.AddUint64(&svc.requestCount, 1)

	key := signature("recommend", req)
	if key != "" {
		if cached, found := svc.recommendCache.Get(key); found {
			atomic.AddUint64(&svc.servedCount, 1)
			return cached.(*domain.RecommendationResult), nil
		}
	}

	res, err := svc.recommend.Recommend(req)
	if err != nil {
		atomic.AddUint64(&svc.failedCount, 1)
		if _, ok := domain.AsValidationError(err); !ok {
			logger.Errorf("Recommendation failed (type=%s): %v", req.Type, err)
		}
		return nil, err
	}

	if key != "" {
		svc.recommendCache.Set(key, res, recommendCacheTTL)
	}
	atomic.AddUint64(&svc.servedCount, 1)
	return res, nil
}

// Equipment lists one catalog category with criteria applied.
func (svc *Service) Equipment(category string, cr catalog.Criteria) (interface{}, error) {
	switch category {
	case domain.CategoryPanel:
		return svc.cat.Panels(cr), nil
	case domain.CategoryInverter:
		return svc.cat.Inverters(cr), nil
	case domain.CategoryBattery:
		return svc.cat.Batteries(cr), nil
	case domain.CategoryRacking:
		return svc.cat.Racking(cr), nil
	case domain.CategoryElectrical:
		return svc.cat.Electrical(cr), nil
	case domain.CategoryMonitoring:
		return svc.cat.Monitoring(cr), nil
	default:
		ve := &domain.ValidationError{}
		ve.Addf("category", "unknown equipment category %q", category)
		return nil, ve
	}
}

// Stats reports request counters and catalog size.
func (svc *Service) Stats() map[string]interface{} {
	requests := atomic.LoadUint64(&svc.requestCount)
	served := atomic.LoadUint64(&svc.servedCount)
	failed := atomic.LoadUint64(&svc.failedCount)

	successRate := 100.0
	if served+failed > 0 {
		successRate = float64(served) / float64(served+failed) * 100
	}

	return map[string]interface{}{
		"requests":     requests,
		"served":       served,
		"failed":       failed,
		"success_rate": successRate,
		"cache_size":   svc.searchCache.Size() + svc.recommendCache.Size(),
		"catalog":      svc.cat.Counts(),
	}
}

// Close releases cache resources.
func (svc *Service) Close() error {
	svc.searchCache.Close()
	svc.recommendCache.Close()
	return nil
}

// signature derives a cache key from the marshaled request. A marshal
// failure just disables caching for that request.
func signature(prefix string, v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", prefix, b)
}
