package farms

import "time"

// Cache keeps the owner → farm lookup out of the hot path; every scoped
// request resolves the caller's farm before touching animal data.
type Cache interface {
	GetByOwner(ownerID string) (*Farm, bool)
	SetByOwner(ownerID string, farm *Farm, ttl time.Duration)
	DeleteByOwner(ownerID string)
	Clear()
}

type noopCache struct{}

func (noopCache) GetByOwner(string) (*Farm, bool) {
	return nil, false
}

func (noopCache) SetByOwner(string, *Farm, time.Duration) {}

func (noopCache) DeleteByOwner(string) {}

func (noopCache) Clear() {}
