package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualTicker fires only when the test says so
type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time)}
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

func (m *manualTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case m.ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("poll loop did not accept tick")
	}
}

func (m *manualTicker) factory() TickerFactory {
	return func(time.Duration) Ticker { return m }
}

func receive[T any](t *testing.T, p *Poller[T]) Result[T] {
	t.Helper()
	select {
	case r, ok := <-p.Results():
		require.True(t, ok, "results channel closed unexpectedly")
		return r
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for poll result")
	}
	return Result[T]{}
}

func TestPoller_FetchesImmediatelyThenPerTick(t *testing.T) {
	var calls atomic.Int32
	ticker := newManualTicker()
	p := New(func(ctx context.Context) (int32, error) {
		return calls.Add(1), nil
	}, WithTickerFactory(ticker.factory()))

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	first := receive(t, p)
	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, int32(1), first.Value)

	ticker.tick(t)
	second := receive(t, p)
	assert.Equal(t, uint64(2), second.Seq)

	ticker.tick(t)
	receive(t, p)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPoller_NoFetchesAfterStop(t *testing.T) {
	var calls atomic.Int32
	ticker := newManualTicker()
	p := New(func(ctx context.Context) (struct{}, error) {
		calls.Add(1)
		return struct{}{}, nil
	}, WithTickerFactory(ticker.factory()))

	require.NoError(t, p.Start(context.Background()))
	receive(t, p)
	p.Stop()

	assert.True(t, ticker.stopped.Load(), "ticker should be stopped")
	select {
	case ticker.ch <- time.Now():
		t.Fatal("loop still consuming ticks after Stop")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int32(1), calls.Load())

	_, ok := <-p.Results()
	assert.False(t, ok, "results should be closed after Stop")
}

func TestPoller_StopCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	p := New(func(ctx context.Context) (string, error) {
		close(started)
		<-ctx.Done()
		return "late", ctx.Err()
	}, WithTickerFactory(newManualTicker().factory()))

	require.NoError(t, p.Start(context.Background()))
	<-started

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	for r := range p.Results() {
		t.Fatalf("result delivered after teardown: %+v", r)
	}
}

func TestPoller_ErrorsAreDelivered(t *testing.T) {
	boom := errors.New("boom")
	p := New(func(ctx context.Context) (int, error) {
		return 0, boom
	}, WithTickerFactory(newManualTicker().factory()))

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	r := receive(t, p)
	assert.ErrorIs(t, r.Err, boom)
}

func TestPoller_StartTwice(t *testing.T) {
	p := New(func(ctx context.Context) (int, error) { return 0, nil },
		WithTickerFactory(newManualTicker().factory()))

	require.NoError(t, p.Start(context.Background()))
	assert.ErrorIs(t, p.Start(context.Background()), ErrAlreadyStarted)

	p.Stop()
	p.Stop()
	assert.ErrorIs(t, p.Start(context.Background()), ErrStopped)
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := New(func(ctx context.Context) (int, error) { return 0, nil })
	p.Stop()

	_, ok := <-p.Results()
	assert.False(t, ok)
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := New(func(ctx context.Context) (int, error) { return 0, nil })
	assert.Equal(t, 5*time.Second, p.Interval())

	p = New(func(ctx context.Context) (int, error) { return 0, nil }, WithInterval(time.Second))
	assert.Equal(t, time.Second, p.Interval())
}

func TestGate_DropsStaleResults(t *testing.T) {
	var g Gate
	assert.True(t, g.Admit(2))
	assert.False(t, g.Admit(1), "older result must be ignored")
	assert.False(t, g.Admit(2), "duplicate must be ignored")
	assert.True(t, g.Admit(3))

	g.Reset()
	assert.True(t, g.Admit(1))
}
