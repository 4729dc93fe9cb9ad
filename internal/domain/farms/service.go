package farms

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultCacheTTL = time.Minute

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cache: noopCache{}, cacheTTL: defaultCacheTTL}
}

func NewServiceWithCache(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{repo: repo, cache: cache, cacheTTL: ttl}
}

// GetByOwner resolves the caller's farm, the scope of every animal
// operation. A user without a farm gets ErrFarmNotFound.
func (s *Service) GetByOwner(ctx context.Context, ownerID string) (*Farm, error) {
	if farm, ok := s.cache.GetByOwner(ownerID); ok {
		return farm, nil
	}

	farm, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.cache.SetByOwner(ownerID, farm, s.cacheTTL)
	return farm, nil
}

// Rename updates the farm's name, verifying ownership first, and drops the
// owner's cache entry.
func (s *Service) Rename(ctx context.Context, ownerID, farmID, name string) (*Farm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	farm, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if farm.ID != farmID {
		return nil, ErrFarmNotFound
	}

	if err := s.repo.UpdateName(ctx, farm.ID, name); err != nil {
		return nil, err
	}

	s.cache.DeleteByOwner(ownerID)
	farm.Name = name
	return farm, nil
}
