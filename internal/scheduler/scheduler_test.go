package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"space/explorer/internal/domain"
	"space/explorer/internal/page"
	"space/explorer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	mu       sync.Mutex
	sessions map[string]int
}

func (l *countingLoader) LoadAll(_ context.Context, sess service.Session) []domain.LoadOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sessions == nil {
		l.sessions = map[string]int{}
	}
	l.sessions[sess.ID]++
	return nil
}

func (l *countingLoader) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.sessions {
		n += c
	}
	return n
}

func TestRefreshNow_EveryBoard(t *testing.T) {
	registry := page.NewRegistry(0, 0)
	a, _ := registry.Create()
	b, _ := registry.Create()
	loader := &countingLoader{}

	s, err := New("", registry, loader)
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	assert.Equal(t, 2, s.RefreshNow(context.Background()))
	assert.Equal(t, map[string]int{a: 1, b: 1}, loader.sessions)
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("not a schedule", page.NewRegistry(0, 0), &countingLoader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
}

func TestRun_DisabledStopsWithContext(t *testing.T) {
	s, err := New("", page.NewRegistry(0, 0), &countingLoader{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestRun_FiresOnSchedule(t *testing.T) {
	registry := page.NewRegistry(0, 0)
	registry.Create()
	loader := &countingLoader{}

	s, err := New("@every 1s", registry, loader)
	require.NoError(t, err)
	require.True(t, s.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return loader.total() > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRefreshNow_SkipsIdleBoards(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	registry := page.NewRegistry(10*time.Minute, 0)
	registry.SetClock(func() time.Time { return now })

	stale, _ := registry.Create()
	now = now.Add(15 * time.Minute)
	fresh, _ := registry.Create()
	loader := &countingLoader{}

	s, err := New("", registry, loader)
	require.NoError(t, err)

	assert.Equal(t, 1, s.RefreshNow(context.Background()))
	assert.Equal(t, map[string]int{fresh: 1}, loader.sessions)
	assert.Equal(t, 1, registry.Len())
	_, ok := registry.Get(stale)
	assert.False(t, ok)
}
