package inmemory

import (
	"sync"
	"time"

	farmsdomain "herdbook-go/internal/domain/farms"
)

// FarmCache is a TTL cache for the owner → farm lookup performed by every
// farm-scoped request.
type FarmCache struct {
	mu    sync.RWMutex
	items map[string]farmItem
}

type farmItem struct {
	value     farmsdomain.Farm
	expiresAt time.Time
}

func NewFarmCache() *FarmCache {
	return &FarmCache{
		items: make(map[string]farmItem),
	}
}

func (c *FarmCache) GetByOwner(ownerID string) (*farmsdomain.Farm, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[ownerID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[ownerID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, ownerID)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *FarmCache) SetByOwner(ownerID string, farm *farmsdomain.Farm, ttl time.Duration) {
	if farm == nil || ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.items[ownerID] = farmItem{
		value:     *farm,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *FarmCache) DeleteByOwner(ownerID string) {
	c.mu.Lock()
	delete(c.items, ownerID)
	c.mu.Unlock()
}

func (c *FarmCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]farmItem)
	c.mu.Unlock()
}
