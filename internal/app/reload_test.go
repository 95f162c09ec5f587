package app

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) last() tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return nil
	}
	return r.msgs[len(r.msgs)-1]
}

func waitFor(t *testing.T, rec *recorder, ok func(tea.Msg) bool) tea.Msg {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if msg := rec.last(); msg != nil && ok(msg) {
			return msg
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("timed out waiting for reload message")
	return nil
}

func TestReloaderSendsParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("l1: 150\n"), 0o644))

	rec := &recorder{}
	r := NewReloader(path)
	require.NoError(t, r.Start(rec))
	defer r.Stop()

	require.NoError(t, os.WriteFile(path, []byte("l1: 125\n"), 0o644))
	waitFor(t, rec, func(m tea.Msg) bool {
		r, ok := m.(ConfigReloadedMsg)
		return ok && r.Params.L1 == 125
	})

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("l1: -1\n"), 0o644))
	msg := waitFor(t, rec, func(m tea.Msg) bool {
		_, ok := m.(ConfigErrorMsg)
		return ok
	})
	assert.Error(t, msg.(ConfigErrorMsg).Err)

	// Non-finite values are rejected before they reach the animator.
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("l2: .nan\n"), 0o644))
	msg = waitFor(t, rec, func(m tea.Msg) bool {
		e, ok := m.(ConfigErrorMsg)
		return ok && strings.Contains(e.Err.Error(), "l2")
	})
	assert.Contains(t, msg.(ConfigErrorMsg).Err.Error(), "NaN")
}

func TestReloaderStopWithoutStart(t *testing.T) {
	r := NewReloader("unused.yaml")
	r.Stop()
}
