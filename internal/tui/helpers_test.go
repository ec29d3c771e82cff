package tui

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/devyntra/internal/api"
	"github.com/thenoetrevino/devyntra/internal/app"
	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/logging"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/poller"
	"github.com/thenoetrevino/devyntra/internal/testutil"
)

// manualTicker fires only when the test says so
type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
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

// tickers hands out a fresh manualTicker per poller and remembers them
type tickers struct {
	mu  sync.Mutex
	all []*manualTicker
}

func (tk *tickers) factory(time.Duration) poller.Ticker {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time)}
	tk.all = append(tk.all, t)
	return t
}

func (tk *tickers) latest() *manualTicker {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if len(tk.all) == 0 {
		return nil
	}
	return tk.all[len(tk.all)-1]
}

func (tk *tickers) count() int {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return len(tk.all)
}

type harness struct {
	backend *testutil.Backend
	app     *app.App
	tickers *tickers
}

// setupModel builds a model over an in-memory store and a fake backend,
// sized to a 120x40 terminal. The session check has not run yet.
func setupModel(t *testing.T, start navigation.Route) (*Model, *harness) {
	t.Helper()

	backend := testutil.NewBackend(t)
	client, err := api.NewClient(backend.URL())
	require.NoError(t, err)

	a := app.New(
		database.NewRepository(testutil.SetupTestDB(t)),
		client,
		app.WithLogger(logging.Discard()),
		app.WithStartRoute(start),
	)

	tk := &tickers{}
	m := InitialModel(context.Background(), a, WithPollerOptions(poller.WithTickerFactory(tk.factory)))
	model := &m
	t.Cleanup(func() { model.Shutdown() })

	update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	return model, &harness{backend: backend, app: a, tickers: tk}
}

// update feeds msg through Update and stores the result back into m
func update(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	*m = updated
	return cmd
}

// finishSessionCheck runs the storage check and delivers its message
func finishSessionCheck(t *testing.T, m *Model) {
	t.Helper()
	update(t, m, m.loadSession()())
}

// loginAs loads the session store and logs in with a session valid on the backend
func loginAs(t *testing.T, m *Model, h *harness, email string) *models.Session {
	t.Helper()
	s := h.backend.IssueSession(email, "Dev")
	require.NoError(t, h.app.Sessions.Login(context.Background(), s))
	return s
}

// nextPoll waits for the running poller's next result and applies it
func nextPoll(t *testing.T, m *Model) {
	t.Helper()
	require.NotNil(t, m.poll, "poller should be running")
	select {
	case r, ok := <-m.poll.poller.Results():
		require.True(t, ok, "results channel closed unexpectedly")
		update(t, m, pollResultMsg{generation: m.poll.generation, result: r})
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for poll result")
	}
}

// runCmd executes cmd and returns the messages it produces, flattening batches.
// Only use it when every command in the batch returns immediately.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(text string) tea.KeyPressMsg {
	r := []rune(text)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: text})
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func viewContent(m *Model) string {
	return m.View().Content
}
