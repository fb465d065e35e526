package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/domain/repository"
)

const buildingsKeyPrefix = "buildings:v1:"

// cachedBuildingRepository - cache-aside обёртка над источником зданий.
// Кешируется только сырой набор зданий; адреса и расстояния не кешируются.
type cachedBuildingRepository struct {
	source repository.BuildingRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedBuildingRepository оборачивает источник кешем. Ошибки кеша не фатальны:
// при недоступном Redis здания читаются из источника.
func NewCachedBuildingRepository(
	source repository.BuildingRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.BuildingRepository {
	return &cachedBuildingRepository{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedBuildingRepository) Source() string {
	return r.source.Source()
}

func (r *cachedBuildingRepository) LoadAll(ctx context.Context) ([]*domain.Building, error) {
	key := buildingsKeyPrefix + r.source.Source()

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("Dataset cache unavailable, loading from source", zap.Error(err))
	}
	if err == nil && data != nil {
		var buildings []*domain.Building
		if err := json.Unmarshal(data, &buildings); err == nil {
			r.logger.Info("Buildings loaded from cache",
				zap.String("key", key),
				zap.Int("buildings", len(buildings)))
			return buildings, nil
		}
		r.logger.Warn("Corrupted dataset cache entry, reloading", zap.String("key", key))
	}

	buildings, err := r.source.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(buildings); err != nil {
		r.logger.Warn("Failed to marshal buildings for cache", zap.Error(err))
	} else if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
		r.logger.Warn("Failed to store buildings in cache", zap.Error(err))
	}

	return buildings, nil
}
