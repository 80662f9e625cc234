package shard

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memocache/eviction"
	"memocache/types"
)

func TestCOWStore_Basics(t *testing.T) {
	s := NewCOWStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, int64(0), s.Len())

	s.Put("k", &types.Entry{Key: "k", Value: 1})
	ent, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, ent.Value)
	assert.Equal(t, int64(1), s.Len())

	// Put for an existing key overwrites: last write wins.
	s.Put("k", &types.Entry{Key: "k", Value: 2})
	ent, _ = s.Get("k")
	assert.Equal(t, 2, ent.Value)
	assert.Equal(t, int64(1), s.Len())

	s.Delete("k")
	_, ok = s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, int64(0), s.Len())

	// Deleting an absent key is a no-op.
	s.Delete("k")
	assert.Equal(t, int64(0), s.Len())
}

func TestCOWStore_ReadersDuringWrites(t *testing.T) {
	sh := New(eviction.New(eviction.None))

	var wg sync.WaitGroup

	// One writer mutating under the shard mutex...
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			key := fmt.Sprintf("k%d", i)
			sh.WriteMu.Lock()
			sh.Store.Put(key, &types.Entry{Key: key, Value: i})
			sh.WriteMu.Unlock()
		}
	}()

	// ...while many readers run lock-free against snapshots.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if ent, ok := sh.Store.Get(fmt.Sprintf("k%d", i)); ok {
					assert.Equal(t, i, ent.Value)
				}
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(500), sh.Store.Len())
}

func TestHashSelector_IsDeterministic(t *testing.T) {
	shards := []*Shard{
		New(eviction.New(eviction.None)),
		New(eviction.New(eviction.None)),
		New(eviction.New(eviction.None)),
	}

	sel := HashSelector{}

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		first := sel.Select(key, shards)
		for j := 0; j < 5; j++ {
			assert.Same(t, first, sel.Select(key, shards), "same key must land on the same shard")
		}
	}
}

func TestHashSelector_SpreadsKeys(t *testing.T) {
	shards := []*Shard{
		New(eviction.New(eviction.None)),
		New(eviction.New(eviction.None)),
		New(eviction.New(eviction.None)),
		New(eviction.New(eviction.None)),
	}

	sel := HashSelector{}
	seen := make(map[*Shard]int)
	for i := 0; i < 1000; i++ {
		seen[sel.Select(fmt.Sprintf("key-%d", i), shards)]++
	}

	// Not a statistical test; just make sure no shard is completely cold.
	assert.Len(t, seen, len(shards))
}
