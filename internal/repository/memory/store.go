package memory

import (
	"sync"

	"github.com/patrickmn/go-cache"
)

// Store holds every collection of the in-memory backend. Records never
// expire; the cache is only used as a concurrent keyed map.
type Store struct {
	users        *cache.Cache
	rooms        *cache.Cache
	sessions     *cache.Cache
	interactions *cache.Cache

	// serialises the email uniqueness check with the insert
	userMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:        cache.New(cache.NoExpiration, 0),
		rooms:        cache.New(cache.NoExpiration, 0),
		sessions:     cache.New(cache.NoExpiration, 0),
		interactions: cache.New(cache.NoExpiration, 0),
	}
}
