package types

import (
	"sync/atomic"
	"time"
)

/*
Entry is one stored key/value pair plus its timestamps.

Key and Value never change after construction. The timestamps do: the
lock-free hit path reads the expiration deadline and, with a sliding
TTL, pushes it forward on every access, concurrently with other
readers. They are therefore kept as atomic unix nanoseconds behind
accessors instead of bare time.Time fields a racing reader could tear.
*/
type Entry struct {
	Key   string
	Value any

	createdAt      atomic.Int64 // unix nanos
	lastAccessedAt atomic.Int64 // unix nanos
	expireAt       atomic.Int64 // unix nanos; 0 => no TTL
}

// NewEntry creates an entry stamped at now, with no expiration deadline.
func NewEntry(key string, value any, now time.Time) *Entry {
	e := &Entry{Key: key, Value: value}
	e.createdAt.Store(now.UnixNano())
	e.lastAccessedAt.Store(now.UnixNano())
	return e
}

// CreatedAt reports when the entry was stored.
func (e *Entry) CreatedAt() time.Time {
	return time.Unix(0, e.createdAt.Load())
}

// LastAccessedAt reports the most recent read, or the store time if the
// entry was never read.
func (e *Entry) LastAccessedAt() time.Time {
	return time.Unix(0, e.lastAccessedAt.Load())
}

// Touch records a read at the given moment.
func (e *Entry) Touch(now time.Time) {
	e.lastAccessedAt.Store(now.UnixNano())
}

// ExpireAt returns the expiration deadline, or the zero Time if the
// entry never expires.
func (e *Entry) ExpireAt() time.Time {
	n := e.expireAt.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// SetExpireAt moves the expiration deadline.
func (e *Entry) SetExpireAt(t time.Time) {
	e.expireAt.Store(t.UnixNano())
}
