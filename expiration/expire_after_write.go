package expiration

import (
	"time"

	"memocache/types"
)

/*
ExpireAfterWrite gives every entry a fixed lifetime counted from the
moment it was stored. Reads do NOT extend it.

This is the strategy to pick when the produced value goes stale with
time regardless of how often it is read (e.g., a computed report that
is only valid for a minute).
*/
type ExpireAfterWrite struct {
	TTL time.Duration
}

func (e *ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	deadline := ent.ExpireAt()
	return !deadline.IsZero() && now.After(deadline)
}

// OnAccess only records the access; the deadline stays put.
func (e *ExpireAfterWrite) OnAccess(ent *types.Entry, now time.Time) {
	ent.Touch(now)
}

func (e *ExpireAfterWrite) OnStore(ent *types.Entry, now time.Time) {
	ent.SetExpireAt(now.Add(e.TTL))
}
