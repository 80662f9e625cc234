package sink

import "context"

/*
This file defines what a "sink" is.

Every value the cache computes through its producer lives only in memory.
A sink forwards those values to a Recorder as well, so they can outlive
the process:

- warm-cache files that speed up the next start
- an audit table of everything that was computed
- a shared cache tier other processes read from

Different systems have different needs:
- Some want every value recorded before the caller sees it (Blocking)
- Some want the read path untouched and accept losing a few records (Buffered)

Instead of hard-coding one behavior, we define an interface so the
strategy can be swapped.
*/

/*
Sink is the contract all persistence strategies must follow.
The cache engine does not care which one is used. It simply calls these methods.
*/
type Sink interface {

	// OnStore is called whenever the cache stores a freshly computed value.
	// It is never called for cache hits or failed productions.
	OnStore(ctx context.Context, key string, value any)

	// Close is called when the cache is shutting down.
	// Implementations flush whatever they still hold.
	Close()
}
