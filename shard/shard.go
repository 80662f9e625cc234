package shard

import (
	"sync"

	"memocache/eviction"
)

/*
This file defines what a "Shard" is. A shard is a small, independent piece
of the cache. Instead of one big map and one big lock, we split the key
space into many shards. Each shard:
- Holds its portion of the entries
- Has its own eviction policy instance
- Has its own lock for writes

Misses on different keys then rarely contend with each other.
*/

type Shard struct {

	// Store holds the actual key → entry data for this shard.
	// It is a copy-on-write store, so reads are lock-free.
	Store Store

	// Eviction decides which key should be removed when this shard
	// runs out of space. Each shard has its OWN policy instance.
	// Policies that track reads synchronize internally, because OnGet
	// is called from the lock-free read path (see eviction.Policy).
	Eviction eviction.Policy

	// WriteMu protects write operations on this shard:
	// store mutations and eviction bookkeeping.
	// Reads never take it.
	WriteMu sync.Mutex
}

func New(ev eviction.Policy) *Shard {
	return &Shard{
		Store:    NewCOWStore(),
		Eviction: ev,
	}
}
