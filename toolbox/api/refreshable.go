package api

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// watcherBuffer bounds each watcher channel. A watcher that falls this
// far behind misses intermediate states but always observes a later one.
const watcherBuffer = 16

// Refreshable holds the latest value of a repeatable remote call and
// republishes its state on every refresh. The previous value is
// retained across a failed refresh so the UI can keep displaying it.
type Refreshable[T any] struct {
	logger zerolog.Logger
	desc   string
	fn     CallFunc[T]

	mu       sync.Mutex
	state    core.State[T]
	value    T
	hasValue bool
	inflight bool
	watchers map[chan core.State[T]]struct{}
}

// RefreshableOption configures a Refreshable at construction.
type RefreshableOption[T any] func(*refreshableConfig[T])

type refreshableConfig[T any] struct {
	initial     *T
	autoRefresh *bool
	logger      zerolog.Logger
}

// WithInitialValue seeds the Refreshable with a value. When set, the
// initial state is Success and no automatic refresh is triggered unless
// WithAutoRefresh(true) is also given.
func WithInitialValue[T any](value T) RefreshableOption[T] {
	return func(cfg *refreshableConfig[T]) {
		cfg.initial = &value
	}
}

// WithAutoRefresh overrides whether construction triggers a refresh.
// The default is to refresh only when no initial value was supplied.
func WithAutoRefresh[T any](auto bool) RefreshableOption[T] {
	return func(cfg *refreshableConfig[T]) {
		cfg.autoRefresh = &auto
	}
}

// WithRefreshLogger sets the logger used for failure classification.
func WithRefreshLogger[T any](logger zerolog.Logger) RefreshableOption[T] {
	return func(cfg *refreshableConfig[T]) {
		cfg.logger = logger
	}
}

// NewRefreshable builds a Refreshable around the given thunk. The
// context is the owning scope: an automatic initial refresh runs on it,
// and cancelling it aborts that refresh.
func NewRefreshable[T any](ctx context.Context, desc string, fn CallFunc[T], opts ...RefreshableOption[T]) *Refreshable[T] {
	cfg := refreshableConfig[T]{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Refreshable[T]{
		logger:   cfg.logger,
		desc:     desc,
		fn:       fn,
		state:    core.Loading[T](),
		watchers: make(map[chan core.State[T]]struct{}),
	}
	if cfg.initial != nil {
		r.value = *cfg.initial
		r.hasValue = true
		r.state = core.Success(*cfg.initial)
	}

	auto := cfg.initial == nil
	if cfg.autoRefresh != nil {
		auto = *cfg.autoRefresh
	}
	if auto {
		go r.Refresh(ctx)
	}
	return r
}

// Refresh re-invokes the call and republishes state: Loading first,
// then Success with the new value or Failure with the previous value
// retained. Overlapping calls coalesce: while one refresh is in flight,
// further Refresh calls return false immediately without starting a
// second call. Cancelling ctx aborts the in-flight call.
func (r *Refreshable[T]) Refresh(ctx context.Context) bool {
	r.mu.Lock()
	if r.inflight {
		r.mu.Unlock()
		return false
	}
	r.inflight = true
	r.state = core.Loading[T]()
	r.broadcastLocked()
	r.mu.Unlock()

	res := Call(ctx, r.logger, r.desc, r.fn)

	r.mu.Lock()
	r.inflight = false
	if res.IsSuccess() {
		r.value = res.Value()
		r.hasValue = true
		r.state = core.Success(res.Value())
	} else {
		r.state = core.Failure[T](res.Err())
	}
	r.broadcastLocked()
	r.mu.Unlock()
	return true
}

// State returns the most recently published state.
func (r *Refreshable[T]) State() core.State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Value returns the last successfully loaded value. ok is false until
// the first successful refresh (or seeded initial value).
func (r *Refreshable[T]) Value() (value T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.hasValue
}

// Watch returns a channel that receives the current state immediately
// and every published state after that. The channel closes when ctx is
// cancelled.
func (r *Refreshable[T]) Watch(ctx context.Context) <-chan core.State[T] {
	ch := make(chan core.State[T], watcherBuffer)

	r.mu.Lock()
	ch <- r.state
	r.watchers[ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.watchers, ch)
		r.mu.Unlock()
		close(ch)
	}()
	return ch
}

// broadcastLocked pushes the current state to every watcher. Callers
// must hold r.mu. Sends never block: a watcher with a full buffer skips
// this state and picks up a later one.
func (r *Refreshable[T]) broadcastLocked() {
	for ch := range r.watchers {
		select {
		case ch <- r.state:
		default:
		}
	}
}
