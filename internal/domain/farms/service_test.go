package farms

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFarmRepo struct {
	byOwner map[string]*Farm
	reads   int
}

func (r *fakeFarmRepo) GetByOwner(ctx context.Context, ownerID string) (*Farm, error) {
	r.reads++
	farm, ok := r.byOwner[ownerID]
	if !ok {
		return nil, ErrFarmNotFound
	}
	copied := *farm
	return &copied, nil
}

func (r *fakeFarmRepo) UpdateName(ctx context.Context, farmID, name string) error {
	for _, farm := range r.byOwner {
		if farm.ID == farmID {
			farm.Name = name
			return nil
		}
	}
	return ErrFarmNotFound
}

type mapCache struct {
	entries map[string]*Farm
}

func (c *mapCache) GetByOwner(ownerID string) (*Farm, bool) {
	farm, ok := c.entries[ownerID]
	return farm, ok
}

func (c *mapCache) SetByOwner(ownerID string, farm *Farm, ttl time.Duration) {
	c.entries[ownerID] = farm
}

func (c *mapCache) DeleteByOwner(ownerID string) {
	delete(c.entries, ownerID)
}

func (c *mapCache) Clear() {
	c.entries = make(map[string]*Farm)
}

func TestGetByOwnerCachesLookup(t *testing.T) {
	repo := &fakeFarmRepo{byOwner: map[string]*Farm{
		"user-1": {ID: "farm-1", Name: "North", OwnerID: "user-1"},
	}}
	svc := NewServiceWithCache(repo, &mapCache{entries: make(map[string]*Farm)}, time.Minute)

	for i := 0; i < 3; i++ {
		farm, err := svc.GetByOwner(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if farm.ID != "farm-1" {
			t.Fatalf("expected farm-1, got %q", farm.ID)
		}
	}
	if repo.reads != 1 {
		t.Fatalf("expected a single repository read, got %d", repo.reads)
	}
}

func TestGetByOwnerNoFarm(t *testing.T) {
	svc := NewService(&fakeFarmRepo{byOwner: map[string]*Farm{}})

	if _, err := svc.GetByOwner(context.Background(), "user-1"); !errors.Is(err, ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}

func TestRenameInvalidatesCache(t *testing.T) {
	repo := &fakeFarmRepo{byOwner: map[string]*Farm{
		"user-1": {ID: "farm-1", Name: "North", OwnerID: "user-1"},
	}}
	cache := &mapCache{entries: make(map[string]*Farm)}
	svc := NewServiceWithCache(repo, cache, time.Minute)

	if _, err := svc.GetByOwner(context.Background(), "user-1"); err != nil {
		t.Fatalf("warmup failed: %v", err)
	}

	farm, err := svc.Rename(context.Background(), "user-1", "farm-1", "South")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if farm.Name != "South" {
		t.Fatalf("expected renamed farm, got %q", farm.Name)
	}
	if _, ok := cache.entries["user-1"]; ok {
		t.Fatalf("expected cache entry dropped after rename")
	}
}

func TestRenameForeignFarm(t *testing.T) {
	repo := &fakeFarmRepo{byOwner: map[string]*Farm{
		"user-1": {ID: "farm-1", Name: "North", OwnerID: "user-1"},
	}}
	svc := NewService(repo)

	if _, err := svc.Rename(context.Background(), "user-1", "farm-2", "South"); !errors.Is(err, ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}
