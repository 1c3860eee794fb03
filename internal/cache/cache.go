package cache

import "time"

// Cache memoizes string values by key
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Len() int
	Clear()
}

// TagKey builds the cache key for an isolated-word tag lookup
func TagKey(word string) string {
	return "tag:v1:" + word
}

// Nop is a cache that never stores anything
type Nop struct{}

// Get always misses
func (Nop) Get(string) (string, bool) { return "", false }

// Set discards the value
func (Nop) Set(string, string, time.Duration) {}

// Len is always zero
func (Nop) Len() int { return 0 }

// Clear does nothing
func (Nop) Clear() {}
