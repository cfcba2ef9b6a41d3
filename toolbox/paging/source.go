package paging

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// NoKey marks an absent page key. Page numbers are 1-based, so zero is
// never a valid key.
const NoKey = 0

// FetchFunc retrieves one page from the remote API. It must return a
// terminal result; partial or streaming responses are not supported.
type FetchFunc[T any] func(ctx context.Context, perPage, page int) core.Result[core.PageData[T]]

// Page is one loaded page in the form the host's paging orchestrator
// consumes: the items plus the keys and counts surrounding them.
// PrevKey and NextKey are NoKey at the respective boundary.
type Page[T any] struct {
	Items       []T
	PrevKey     int
	NextKey     int
	ItemsBefore int
	ItemsAfter  int
}

// State is a snapshot of what the orchestrator has loaded, used to
// compute the key to reload from after invalidation.
type State[T any] struct {
	// Pages holds the loaded pages in presentation order.
	Pages []Page[T]

	// Anchor is the last viewed item position within the full
	// collection; HasAnchor is false when nothing was viewed yet.
	Anchor    int
	HasAnchor bool

	// PageSize is the orchestrator's configured page size.
	PageSize int
}

// Source fetches one page at a time from a page-based remote API. A
// source is single-use: once invalidated it stays invalid, and the
// factory that created it hands out a replacement.
type Source[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
	jumping  bool

	invalid atomic.Bool

	mu        sync.Mutex
	callbacks []func()
}

// NewSource builds a standalone source. Most callers go through a
// Factory instead so invalidation is tracked.
func NewSource[T any](cfg Config, fetch FetchFunc[T]) *Source[T] {
	return &Source[T]{
		fetch:    fetch,
		pageSize: cfg.PageSize,
		jumping:  cfg.EnableJumping,
	}
}

// Load fetches the page identified by key; a key <= 0 means the initial
// load of page 1. On success the result carries the page's items,
// surrounding counts, and adjacent keys. On failure it carries the
// fetch error unchanged; whether and when to retry is the caller's
// decision.
func (s *Source[T]) Load(ctx context.Context, key int) core.Result[Page[T]] {
	if key <= 0 {
		key = 1
	}

	res := s.fetch(ctx, s.pageSize, key)
	if res.IsError() {
		return core.Fail[Page[T]](res.Err())
	}

	data := res.Value()
	page := Page[T]{
		Items:       data.Items,
		ItemsBefore: data.ItemsBefore(),
		ItemsAfter:  data.ItemsAfter(),
	}
	if prev, ok := data.PrevPage(); ok {
		page.PrevKey = prev
	}
	if next, ok := data.NextPage(); ok {
		page.NextKey = next
	}
	return core.Ok(page)
}

// RefreshKey derives the page to reload from after invalidation. With
// jumping enabled the key comes straight from the anchor position;
// otherwise it is anchored to the page adjacent to the closest loaded
// page. ok is false when no useful key can be derived, in which case
// the orchestrator starts from the initial page.
func (s *Source[T]) RefreshKey(state State[T]) (key int, ok bool) {
	if !state.HasAnchor {
		return NoKey, false
	}

	if s.jumping {
		pageSize := state.PageSize
		if pageSize <= 0 {
			pageSize = s.pageSize
		}
		return state.Anchor/pageSize + 1, true
	}

	page, ok := state.closestPage()
	if !ok {
		return NoKey, false
	}
	if page.PrevKey != NoKey {
		return page.PrevKey + 1, true
	}
	if page.NextKey != NoKey {
		return page.NextKey - 1, true
	}
	return NoKey, false
}

// Invalid reports whether the source has been invalidated.
func (s *Source[T]) Invalid() bool {
	return s.invalid.Load()
}

// Invalidate marks the source invalid and fires registered callbacks.
// The transition is one-way and happens at most once; later calls are
// no-ops.
func (s *Source[T]) Invalidate() {
	if !s.invalid.CompareAndSwap(false, true) {
		return
	}

	s.mu.Lock()
	callbacks := s.callbacks
	s.callbacks = nil
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// OnInvalidate registers a callback fired when the source is
// invalidated. If the source is already invalid the callback runs
// immediately, so late registrants still observe the signal.
func (s *Source[T]) OnInvalidate(fn func()) {
	s.mu.Lock()
	if !s.invalid.Load() {
		s.callbacks = append(s.callbacks, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	fn()
}

// closestPage finds the loaded page containing the anchor position,
// falling back to the nearest edge page when the anchor lies outside
// the loaded range.
func (s State[T]) closestPage() (Page[T], bool) {
	if len(s.Pages) == 0 {
		return Page[T]{}, false
	}

	start := s.Pages[0].ItemsBefore
	if s.Anchor < start {
		return s.Pages[0], true
	}
	for _, page := range s.Pages {
		if s.Anchor < start+len(page.Items) {
			return page, true
		}
		start += len(page.Items)
	}
	return s.Pages[len(s.Pages)-1], true
}
