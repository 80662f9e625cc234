package expiration

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"memocache/types"
)

func TestExpireAfterAccess_SlidesOnRead(t *testing.T) {
	s := &ExpireAfterAccess{TTL: time.Minute}
	now := time.Now()

	ent := types.NewEntry("k", "v", now)
	s.OnStore(ent, now)

	assert.False(t, s.IsExpired(ent, now.Add(30*time.Second)))
	assert.True(t, s.IsExpired(ent, now.Add(2*time.Minute)))

	// A read pushes the deadline forward.
	s.OnAccess(ent, now.Add(50*time.Second))
	assert.False(t, s.IsExpired(ent, now.Add(100*time.Second)))
	assert.True(t, s.IsExpired(ent, now.Add(3*time.Minute)))
}

func TestExpireAfterWrite_ReadsDoNotExtend(t *testing.T) {
	s := &ExpireAfterWrite{TTL: time.Minute}
	now := time.Now()

	ent := types.NewEntry("k", "v", now)
	s.OnStore(ent, now)

	s.OnAccess(ent, now.Add(59*time.Second))
	assert.True(t, s.IsExpired(ent, now.Add(61*time.Second)),
		"the deadline is fixed at store time")
	assert.True(t, ent.LastAccessedAt().Equal(now.Add(59*time.Second)))
}

func TestZeroDeadlineNeverExpires(t *testing.T) {
	ent := types.NewEntry("k", "v", time.Now())

	a := &ExpireAfterAccess{TTL: time.Minute}
	w := &ExpireAfterWrite{TTL: time.Minute}

	far := time.Now().Add(100 * 24 * time.Hour)
	assert.False(t, a.IsExpired(ent, far))
	assert.False(t, w.IsExpired(ent, far))
}

func TestExpireAfterAccess_ConcurrentSlides(t *testing.T) {
	// Sliding a deadline happens on the cache's lock-free hit path, so
	// many goroutines may push it forward while others check expiry.
	s := &ExpireAfterAccess{TTL: time.Minute}
	now := time.Now()
	ent := types.NewEntry("k", "v", now)
	s.OnStore(ent, now)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.OnAccess(ent, time.Now())
				assert.False(t, s.IsExpired(ent, time.Now()))
			}
		}()
	}
	wg.Wait()

	assert.False(t, ent.ExpireAt().IsZero())
}
