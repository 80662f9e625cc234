package expiration

import (
	"time"

	"memocache/types"
)

/*
ExpireAfterAccess implements a very common cache behavior called
"expire after access", also known as sliding TTL.

Every time someone reads the entry, the expiration timer is pushed forward.
As long as the value keeps getting used, it stays alive. If nobody touches
it for TTL, it expires.
*/
type ExpireAfterAccess struct {

	// TTL defines how long the entry remains valid AFTER it is accessed.
	TTL time.Duration
}

// IsExpired checks whether the entry is expired at this moment.
func (e *ExpireAfterAccess) IsExpired(ent *types.Entry, now time.Time) bool {
	deadline := ent.ExpireAt()
	return !deadline.IsZero() && now.After(deadline)
}

/*
OnAccess is the key part of "expire after access":
1. Record the access
2. Push the deadline forward by TTL

This runs on the lock-free hit path; the entry's atomic accessors make
that safe.
*/
func (e *ExpireAfterAccess) OnAccess(ent *types.Entry, now time.Time) {
	ent.Touch(now)
	ent.SetExpireAt(now.Add(e.TTL))
}

// OnStore starts the entry's expiration timer.
func (e *ExpireAfterAccess) OnStore(ent *types.Entry, now time.Time) {
	ent.SetExpireAt(now.Add(e.TTL))
}
