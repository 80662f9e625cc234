package eviction

// noop is the "no eviction" policy.
//
// It tracks nothing and never nominates a victim. With this policy the
// cache keeps every entry for its whole lifetime, which is exactly what
// a memoization table wants when memory is not a concern.
type noop struct{}

func (noop) OnGet(string)  {}
func (noop) OnPut(string)  {}
func (noop) Remove(string) {}

// Evict returns "" so the caller knows nothing can be removed.
func (noop) Evict() string { return "" }
