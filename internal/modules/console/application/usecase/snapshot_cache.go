package usecase

import (
	"strings"
	"sync"
	"time"

	"condoYaAdmin/internal/modules/console/domain"
)

const (
	cacheKindList  = "list"
	cacheKindItem  = "item"
	cacheDelimiter = ":"
)

// snapshotCache keeps the last good backend response per entity so list and
// detail screens can keep rendering through transient backend failures.
type snapshotCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]*snapshotCacheEntry
}

type snapshotCacheEntry struct {
	entity     string
	kind       string
	resourceID string
	rows       []domain.Row
	row        domain.Row
	fetchedAt  time.Time
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{entries: make(map[string]map[string]*snapshotCacheEntry)}
}

func (c *snapshotCache) setRows(entity string, rows []domain.Row) {
	entity = strings.ToLower(strings.TrimSpace(entity))
	if entity == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[entity] == nil {
		c.entries[entity] = make(map[string]*snapshotCacheEntry)
	}
	c.entries[entity][listKey()] = &snapshotCacheEntry{
		entity:    entity,
		kind:      cacheKindList,
		rows:      rows,
		fetchedAt: time.Now().UTC(),
	}
}

func (c *snapshotCache) setRow(entity, resourceID string, row domain.Row) {
	entity = strings.ToLower(strings.TrimSpace(entity))
	resourceID = strings.TrimSpace(resourceID)
	if entity == "" || resourceID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[entity] == nil {
		c.entries[entity] = make(map[string]*snapshotCacheEntry)
	}
	c.entries[entity][itemKey(resourceID)] = &snapshotCacheEntry{
		entity:     entity,
		kind:       cacheKindItem,
		resourceID: resourceID,
		row:        row,
		fetchedAt:  time.Now().UTC(),
	}
}

func (c *snapshotCache) rows(entity string) ([]domain.Row, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	group := c.entries[strings.ToLower(strings.TrimSpace(entity))]
	if group == nil {
		return nil, time.Time{}, false
	}
	entry, ok := group[listKey()]
	if !ok {
		return nil, time.Time{}, false
	}
	return entry.rows, entry.fetchedAt, true
}

func (c *snapshotCache) row(entity, resourceID string) (domain.Row, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	group := c.entries[strings.ToLower(strings.TrimSpace(entity))]
	if group == nil {
		return nil, time.Time{}, false
	}
	entry, ok := group[itemKey(strings.TrimSpace(resourceID))]
	if !ok {
		return nil, time.Time{}, false
	}
	return entry.row, entry.fetchedAt, true
}

func (c *snapshotCache) invalidate(entity string) {
	entity = strings.ToLower(strings.TrimSpace(entity))
	if entity == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, entity)
}

func (c *snapshotCache) dropItem(entity, resourceID string) {
	entity = strings.ToLower(strings.TrimSpace(entity))
	if entity == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if group := c.entries[entity]; group != nil {
		delete(group, itemKey(strings.TrimSpace(resourceID)))
		if len(group) == 0 {
			delete(c.entries, entity)
		}
	}
}

func listKey() string {
	return cacheKindList + cacheDelimiter + "all"
}

func itemKey(resourceID string) string {
	return cacheKindItem + cacheDelimiter + resourceID
}
