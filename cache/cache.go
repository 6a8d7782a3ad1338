package cache

import "time"

// Store is a TTL bound key-value store of serialized snapshots
type Store interface {
	// Get returns the value stored under key, if it has not expired
	Get(key string) ([]byte, bool)

	// Set stores value under key. A ttl of 0 uses the store's default expiration
	Set(key string, value []byte, ttl time.Duration)

	// ItemCount returns the number of stored items, including expired ones not yet cleaned up
	ItemCount() int

	// OnEvicted registers a callback for items removed after expiring
	OnEvicted(cb func(key string))

	// DeleteExpired removes expired items now instead of waiting for the cleanup interval
	DeleteExpired()
}
