package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func(ctx context.Context) error
}

func (m *mockService) Start(ctx context.Context) error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn(ctx)
	}
	<-ctx.Done()
	return nil
}

func (m *mockService) Stop() {
	m.stopped.Store(true)
}

func runAsync(lc *Lifecycle, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()
	return done
}

func TestLifecycleStartsAndStopsServices(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger)

	svc1 := &mockService{}
	svc2 := &mockService{}

	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)

	require.Eventually(t, func() bool {
		return svc1.started.Load() && svc2.started.Load()
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycleStopsWhenServiceFinishes(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	session := &mockService{startFn: func(context.Context) error { return nil }}
	other := &mockService{}
	lc.Add("session", session)
	lc.Add("other", other)

	select {
	case err := <-runAsync(lc, context.Background()):
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
	assert.True(t, session.stopped.Load())
	assert.True(t, other.stopped.Load())
}

func TestLifecycleReturnsServiceError(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	boom := errors.New("boom")
	lc.Add("session", &mockService{startFn: func(context.Context) error { return boom }})

	err := lc.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service session")
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func(context.Context) error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	err := svc.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)

	(&FuncService{StartFn: svc.StartFn}).Stop()
}
