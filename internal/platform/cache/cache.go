// Package cache provides a bounded in-memory set with LRU eviction.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity se usa cuando la capacidad pedida no es positiva.
const DefaultCapacity = 1 << 20

// LRU es un conjunto acotado de claves: al llenarse descarta la usada hace más tiempo.
// Sirve para filtrar repetidos en flujos largos con memoria fija; una clave
// expulsada puede volver a aceptarse.
type LRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // frente = más reciente
}

// NewLRU crea un conjunto con la capacidad indicada.
//
// Example:
//
//	seen := cache.NewLRU(1 << 16)
//	if seen.Add(label) { emit(label) }
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &LRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Add inserta key y retorna true si no estaba. Si ya estaba la marca como reciente.
func (c *LRU) Add(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, exists := c.items[key]; exists {
		c.order.MoveToFront(el)
		return false
	}

	if len(c.items) >= c.capacity {
		c.evictLRU()
	}
	c.items[key] = c.order.PushFront(key)
	return true
}

// Contains reporta si key está presente sin alterar su recencia.
func (c *LRU) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.items[key]
	return exists
}

// Clear removes all keys.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Size returns the current number of keys.
func (c *LRU) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of keys the set can hold.
func (c *LRU) Capacity() int {
	return c.capacity
}

// evictLRU removes the least recently used key.
// Must be called with c.mu held.
func (c *LRU) evictLRU() {
	el := c.order.Back()
	if el == nil {
		return
	}
	delete(c.items, el.Value.(string))
	c.order.Remove(el)
}
