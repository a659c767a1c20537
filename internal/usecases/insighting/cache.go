package insighting

import (
	"sync"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// cacheKey identifica um resultado de query pelo período consultado. O canal
// fica de fora da chave de propósito: o filtro é aplicado em memória e uma
// mesma query serve qualquer seleção de canal.
type cacheKey struct {
	startDate string
	endDate   string
}

type cacheEntry struct {
	rows     []*domain.PerformanceRow
	storedAt time.Time
}

// resultCache memoiza resultados de query por um intervalo fixo de tempo.
// O relógio é injetado para que os testes controlem a expiração.
type resultCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	return &resultCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

func (c *resultCache) get(key cacheKey) ([]*domain.PerformanceRow, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return entry.rows, true
}

func (c *resultCache) put(key cacheKey, rows []*domain.PerformanceRow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{rows: rows, storedAt: c.now()}
}
