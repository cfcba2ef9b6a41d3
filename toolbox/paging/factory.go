package paging

import "sync"

// Factory produces Sources bound to one fetch function and tracks every
// live instance so they can all be invalidated atomically after a
// mutation, forcing each consumer to reload from its own refresh key.
type Factory[T any] struct {
	cfg   Config
	fetch FetchFunc[T]

	mu      sync.Mutex
	sources []*Source[T]
}

// NewFactory validates the config and builds a factory around the fetch
// function.
func NewFactory[T any](cfg Config, fetch FetchFunc[T]) (*Factory[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Factory[T]{cfg: cfg, fetch: fetch}, nil
}

// Config returns the factory's paging configuration, including the
// derived jump threshold, for handing to the host's orchestrator.
func (f *Factory[T]) Config() Config {
	return f.cfg
}

// Create returns a fresh source and starts tracking it. Safe for
// concurrent use with Invalidate.
func (f *Factory[T]) Create() *Source[T] {
	source := NewSource(f.cfg, f.fetch)

	f.mu.Lock()
	f.sources = append(f.sources, source)
	f.mu.Unlock()

	return source
}

// Invalidate atomically swaps out the tracked set and invalidates every
// drained source that is not already invalid. The invalidation loop
// runs outside the lock so callbacks never execute while the set is
// held; a source created after Invalidate returns is unaffected.
func (f *Factory[T]) Invalidate() {
	f.mu.Lock()
	drained := f.sources
	f.sources = nil
	f.mu.Unlock()

	for _, source := range drained {
		if !source.Invalid() {
			source.Invalidate()
		}
	}
}

// Tracked returns the number of live sources, for diagnostics.
func (f *Factory[T]) Tracked() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sources)
}
