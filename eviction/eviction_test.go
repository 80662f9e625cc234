package eviction

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")

	t.Run("evicts least recently used", func(t *testing.T) {
		p.OnGet("a") // a becomes most recent; b is now the oldest
		assert.Equal(t, "b", p.Evict())
	})

	t.Run("explicit remove is skipped by eviction", func(t *testing.T) {
		p.Remove("c")
		assert.Equal(t, "a", p.Evict())
	})

	t.Run("empty policy evicts nothing", func(t *testing.T) {
		assert.Equal(t, "", p.Evict())
	})
}

func TestLRU_OverwriteCountsAsUse(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("a") // overwrite refreshes a's position

	assert.Equal(t, "b", p.Evict())
}

func TestLFU(t *testing.T) {
	p := New(LFU)

	p.OnPut("hot")
	p.OnPut("cold")

	p.OnGet("hot")
	p.OnGet("hot")
	p.OnGet("cold")

	assert.Equal(t, "cold", p.Evict(), "the least frequently used key goes first")
	assert.Equal(t, "hot", p.Evict())
	assert.Equal(t, "", p.Evict())
}

func TestLFU_Remove(t *testing.T) {
	p := New(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b")

	p.Remove("a")
	assert.Equal(t, "b", p.Evict())
}

func TestFIFO(t *testing.T) {
	p := New(FIFO)

	p.OnPut("first")
	p.OnPut("second")
	p.OnPut("third")

	// Reads are irrelevant to FIFO.
	p.OnGet("first")
	p.OnGet("first")

	assert.Equal(t, "first", p.Evict())

	p.Remove("second")
	assert.Equal(t, "third", p.Evict())
	assert.Equal(t, "", p.Evict())
}

func TestNone_NeverNominatesAVictim(t *testing.T) {
	p := New(None)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")

	assert.Equal(t, "", p.Evict())
}

func TestStatefulPolicies_ConcurrentReads(t *testing.T) {
	// OnGet runs on the cache's lock-free hit path, so it may race
	// with itself and with mutators holding only the shard lock.
	// The stateful policies must tolerate that; run with -race.
	for _, typ := range []PolicyType{LRU, LFU} {
		t.Run(string(typ), func(t *testing.T) {
			p := New(typ)

			var wg sync.WaitGroup

			// One "shard writer" inserting and evicting...
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					p.OnPut(fmt.Sprintf("k%d", i%32))
					if i%8 == 0 {
						p.Evict()
					}
					if i%16 == 0 {
						p.Remove(fmt.Sprintf("k%d", i%32))
					}
				}
			}()

			// ...while readers report hits concurrently.
			for g := 0; g < 4; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < 500; i++ {
						p.OnGet(fmt.Sprintf("k%d", (g+i)%32))
					}
				}(g)
			}

			wg.Wait()
		})
	}
}

func TestNew_DefaultsToNone(t *testing.T) {
	p := New("")
	p.OnPut("a")
	assert.Equal(t, "", p.Evict())
}
