package shard

import "hash/fnv"

/*
This file decides HOW a cache key is assigned to a shard.
If every request went to the same shard, that shard would become a
bottleneck. Shard selection spreads keys evenly so concurrent misses
for different keys land on different locks.
*/

/*
Selector is the interface that decides which shard handles a given key.
The cache does not care HOW the decision is made, only that the same key
always maps to the same shard.
*/
type Selector interface {
	Select(string, []*Shard) *Shard
}

// HashSelector assigns keys to shards by FNV-1a hash modulo shard count.
// FNV is a fast non-cryptographic hash that spreads typical cache keys
// well enough for this purpose.
type HashSelector struct{}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Select chooses the shard for a given key.
func (HashSelector) Select(key string, shards []*Shard) *Shard {
	return shards[int(hash(key))%len(shards)]
}
