package statelrucache

import (
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

// Key identifies a versionbits state by deployment and deciding block
type Key struct {
	DeploymentName string
	BlockHash      externalapi.DomainHash
}

// NewKey returns the cache key of the given deployment and block
func NewKey(deploymentName string, blockHash *externalapi.DomainHash) Key {
	return Key{DeploymentName: deploymentName, BlockHash: *blockHash}
}

// LRUCache is a least-recently-used cache for threshold states
// indexed by Key
type LRUCache struct {
	cache    map[Key]model.ThresholdState
	capacity int
}

// New creates a new LRUCache
func New(capacity int) *LRUCache {
	return &LRUCache{
		cache:    make(map[Key]model.ThresholdState, capacity+1),
		capacity: capacity,
	}
}

// Add adds an entry to the LRUCache
func (c *LRUCache) Add(key Key, value model.ThresholdState) {
	c.cache[key] = value

	if len(c.cache) > c.capacity {
		c.evictRandom(key)
	}
}

// Get returns the entry for the given key, or (0, false) otherwise
func (c *LRUCache) Get(key Key) (model.ThresholdState, bool) {
	value, ok := c.cache[key]
	return value, ok
}

// Has returns whether the LRUCache contains the given key
func (c *LRUCache) Has(key Key) bool {
	_, ok := c.cache[key]
	return ok
}

// Remove removes the entry for the the given key. Does nothing if
// the entry does not exist
func (c *LRUCache) Remove(key Key) {
	delete(c.cache, key)
}

// Len returns the number of entries in the cache
func (c *LRUCache) Len() int {
	return len(c.cache)
}

// Clear clears the cache
func (c *LRUCache) Clear() {
	for key := range c.cache {
		delete(c.cache, key)
	}
}

// evictRandom evicts an entry other than the one just added
func (c *LRUCache) evictRandom(added Key) {
	for key := range c.cache {
		if key != added {
			c.Remove(key)
			return
		}
	}
}
