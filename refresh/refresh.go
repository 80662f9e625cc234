// This file defines the idea of a "refresh hook".
// The hook lets the cache do something extra WHEN a value is read.
// The goal of refresh is: keep data fresh without slowing down reads.

package refresh

import "memocache/types"

/*
Hook is the interface for refresh behavior.
If a refresh hook is configured, it is called every time a cache entry is
successfully read.

This gives us a chance to:
- Check if the entry is about to expire
- Trigger a background recomputation
- Log access patterns
- Preload related keys

The cache itself does NOT care what the hook does.
It just calls OnRead and moves on.
*/
type Hook interface {

	/*
		OnRead is called after a successful cache read.
		This method MUST be fast and non-blocking because it runs on the
		hot read path. Anything expensive belongs in a goroutine the hook
		owns itself.
	*/
	OnRead(key string, ent *types.Entry)
}

// HookFunc lets a plain function act as a Hook.
type HookFunc func(key string, ent *types.Entry)

func (f HookFunc) OnRead(key string, ent *types.Entry) {
	f(key, ent)
}
