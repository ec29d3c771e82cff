// Package poller runs a fetch immediately and then on a fixed schedule until stopped
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is how often the project list is refreshed
const DefaultInterval = 5 * time.Second

var (
	ErrAlreadyStarted = errors.New("poller already started")
	ErrStopped        = errors.New("poller stopped")
)

// FetchFunc performs one poll. It receives the poller's context, which is
// cancelled when the poller stops.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Result is the outcome of one fetch. Seq increases with every fetch started,
// so a consumer can ignore a result that finishes after a newer one.
type Result[T any] struct {
	Seq   uint64
	Value T
	Err   error
}

// Ticker is the schedule source. *time.Ticker satisfies it through TimeTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a Ticker firing every d
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// TimeTicker is the production TickerFactory
func TimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type config struct {
	interval  time.Duration
	newTicker TickerFactory
	logger    *slog.Logger
	buffer    int
}

// Option configures a Poller
type Option func(*config)

// WithInterval overrides DefaultInterval
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithTickerFactory replaces the schedule source, mainly for tests
func WithTickerFactory(f TickerFactory) Option {
	return func(c *config) {
		if f != nil {
			c.newTicker = f
		}
	}
}

// WithLogger sets the logger for the poller
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBuffer sets the capacity of the results channel
func WithBuffer(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.buffer = n
		}
	}
}

// Poller is a cancellable repeating task. Each fetch runs in its own
// goroutine, so a slow request never delays the schedule.
type Poller[T any] struct {
	fetch FetchFunc[T]
	cfg   config

	results chan Result[T]
	seq     atomic.Uint64

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a poller around fetch. It does nothing until Start.
func New[T any](fetch FetchFunc[T], opts ...Option) *Poller[T] {
	cfg := config{
		interval:  DefaultInterval,
		newTicker: TimeTicker,
		logger:    slog.Default(),
		buffer:    1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Poller[T]{
		fetch:   fetch,
		cfg:     cfg,
		results: make(chan Result[T], cfg.buffer),
	}
}

// Results delivers fetch outcomes. It is closed by Stop.
func (p *Poller[T]) Results() <-chan Result[T] {
	return p.results
}

// Interval returns the polling period
func (p *Poller[T]) Interval() time.Duration {
	return p.cfg.interval
}

// Start fetches once immediately and then once per interval until ctx is
// cancelled or Stop is called.
func (p *Poller[T]) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}
	if p.started {
		return ErrAlreadyStarted
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	ticker := p.cfg.newTicker(p.cfg.interval)

	p.wg.Add(1)
	go p.loop(ctx, ticker)
	p.launch(ctx)

	p.cfg.logger.Debug("poller started", "interval", p.cfg.interval)
	return nil
}

// Stop cancels the schedule and any in-flight fetch, waits for them to
// return, then closes Results. It is safe to call more than once.
func (p *Poller[T]) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		cancel := p.cancel
		p.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		p.wg.Wait()
		close(p.results)
		p.cfg.logger.Debug("poller stopped", "fetches", p.seq.Load())
	})
}

func (p *Poller[T]) loop(ctx context.Context, ticker Ticker) {
	defer p.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			p.launch(ctx)
		}
	}
}

// launch starts one fetch. The caller must hold a wait group slot (the loop
// goroutine or Start) so Add never races with Wait.
func (p *Poller[T]) launch(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	seq := p.seq.Add(1)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		value, err := p.fetch(ctx)
		if ctx.Err() != nil {
			// Torn down while fetching: the result must not be applied
			return
		}
		if err != nil {
			p.cfg.logger.Debug("poll failed", "seq", seq, "error", err)
		}

		select {
		case p.results <- Result[T]{Seq: seq, Value: value, Err: err}:
		case <-ctx.Done():
		}
	}()
}

// Gate admits only results newer than the last one admitted
type Gate struct {
	last uint64
}

// Admit reports whether seq is newer than every previously admitted sequence
func (g *Gate) Admit(seq uint64) bool {
	if seq <= g.last {
		return false
	}
	g.last = seq
	return true
}

// Reset forgets admitted sequences, for a fresh poller
func (g *Gate) Reset() {
	g.last = 0
}
