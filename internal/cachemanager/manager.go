// Package cachemanager provides the in-memory memo store used for derived
// conversion factors.
package cachemanager

import "time"

// NoExpiration keeps an entry until it is deleted or the cache is flushed.
const NoExpiration time.Duration = -1

type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	GetMultiple(keys []K) (map[K]V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(keys ...K)
	Flush()
	ItemCount() int
}
