package depselect

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Controller keeps a dependent control in sync with a source control.
type Controller struct {
	source    SourceControl
	dependent DependentControl
	lookup    Lookup

	ctx         context.Context
	logger      zerolog.Logger
	messages    Messages
	dispatch    Dispatcher
	latestOnly  bool
	timeout     time.Duration
	loadInitial bool

	mu     sync.Mutex
	remove func()

	uiMu     sync.Mutex
	seq      atomic.Uint64
	inflight sync.WaitGroup
}

// New constructs a controller. Nil controls or a nil lookup are accepted and
// turn Initialize into a no-op.
func New(source SourceControl, dependent DependentControl, lookup Lookup, opts ...ControllerOption) *Controller {
	c := &Controller{
		source:     source,
		dependent:  dependent,
		lookup:     lookup,
		ctx:        context.Background(),
		logger:     zerolog.Nop(),
		messages:   DefaultMessages(),
		latestOnly: true,
	}
	c.dispatch = c.serialized
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Initialize registers the change listener. It returns false, without
// touching either control, when a control or the lookup is missing.
// Calling it again after a successful call is a no-op.
func (c *Controller) Initialize() bool {
	if c == nil || isNil(c.source) || isNil(c.dependent) || isNil(c.lookup) {
		return false
	}

	c.mu.Lock()
	if c.remove != nil {
		c.mu.Unlock()
		return true
	}
	c.remove = c.source.OnChange(func() {
		c.SourceChanged(c.ctx)
	})
	if c.remove == nil {
		c.remove = func() {}
	}
	c.mu.Unlock()

	if c.loadInitial && c.source.Value() != "" {
		c.SourceChanged(c.ctx)
	}
	return true
}

// SourceChanged reacts to a new source value. Empty values render the
// awaiting placeholder without a lookup; anything else renders Loading and
// starts an asynchronous lookup whose outcome replaces the options.
func (c *Controller) SourceChanged(ctx context.Context) {
	if c == nil || isNil(c.source) || isNil(c.dependent) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	value := c.source.Value()
	ticket := c.seq.Add(1)

	if value == "" {
		c.show(ticket, State{Kind: AwaitingSource})
		return
	}
	if isNil(c.lookup) {
		return
	}

	c.show(ticket, State{Kind: Loading})

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.show(ticket, c.resolve(ctx, value))
	}()
}

// Close removes the change listener. Lookups already in flight still render.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	remove := c.remove
	c.remove = nil
	c.mu.Unlock()
	if remove != nil {
		remove()
	}
}

// Wait blocks until every started lookup has rendered its outcome.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	c.inflight.Wait()
}

func (c *Controller) resolve(ctx context.Context, value string) (state State) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("source_value", value).
				Interface("panic", r).
				Msg("depselect: lookup panicked")
			state = State{Kind: Failed, Err: errLookupPanicked}
		}
	}()

	items, err := c.lookup.Lookup(ctx, value)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("source_value", value).
			Msg("depselect: error loading options")
	}
	return StateFor(items, err)
}

func (c *Controller) show(ticket uint64, state State) {
	options := Render(state, c.messages)
	c.dispatch(func() {
		if c.latestOnly && c.seq.Load() != ticket {
			c.logger.Debug().
				Uint64("ticket", ticket).
				Str("state", state.Kind.String()).
				Msg("depselect: discarding stale result")
			return
		}
		c.dependent.SetOptions(options)
	})
}

func (c *Controller) serialized(fn func()) {
	c.uiMu.Lock()
	defer c.uiMu.Unlock()
	fn()
}
