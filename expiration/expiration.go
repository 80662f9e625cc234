// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"memocache/types"
)

/*
Strategy is the interface that all expiration rules must follow.
Instead of hard-coding expiration logic into the cache, we define a strategy
so expiration behavior can be swapped easily.

A nil Strategy means entries never expire. That is the default: a pure
memoization table keeps a computed value for its whole lifetime.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at the given moment.
	IsExpired(*types.Entry, time.Time) bool

	// OnAccess is called whenever a cache entry is read successfully.
	OnAccess(*types.Entry, time.Time)

	// OnStore is called whenever a cache entry is written or overwritten.
	OnStore(*types.Entry, time.Time)
}
