package types

import "context"

// Producer is the contract between the cache and the outside world.
type Producer interface {

	/*
		Produce is called when the cache misses. The key was not found in memory,
		so the cache asks the Producer to compute (or fetch) the value.

		1. Cache checks memory → key not found
		2. Cache calls Produce(key)
		3. Producer fetches from DB / API / computes the value
		4. Cache stores the result in memory
		5. Cache returns the value

		If Produce returns an error, the cache stores NOTHING for that key.
		The next lookup for the same key will call Produce again.
	*/
	Produce(ctx context.Context, key string) (any, error)
}

// ProducerFunc lets a plain function act as a Producer.
type ProducerFunc func(ctx context.Context, key string) (any, error)

func (f ProducerFunc) Produce(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}

/*
Recorder is an OPTIONAL secondary destination for computed values.

The cache itself only ever writes to memory. A sink (see the sink package)
can additionally forward every successfully computed value to a Recorder:
- a warm-cache file
- a database table
- another cache tier

This does NOT participate in lookups. It is write-only from the
cache's point of view.
*/
type Recorder interface {
	Record(ctx context.Context, key string, value any) error
}
