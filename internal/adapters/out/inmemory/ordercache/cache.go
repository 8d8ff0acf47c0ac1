// Package ordercache provides the in-memory read model for the most
// recently polled order collection.
package ordercache

import (
	"sync"

	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/ports"
)

var _ ports.OrderCache = (*Cache)(nil)

// Cache holds the last polled order collection. Writes replace the whole
// collection; reads return a copied slice over shared aggregates.
type Cache struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll swaps the cached collection wholesale.
func (c *Cache) ReplaceAll(orders []*order.Order) {
	copied := make([]*order.Order, len(orders))
	copy(copied, orders)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = copied
}

// All returns the cached collection oldest write order preserved.
func (c *Cache) All() []*order.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	copied := make([]*order.Order, len(c.orders))
	copy(copied, c.orders)
	return copied
}

// Drop empties the cache.
func (c *Cache) Drop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = nil
}
