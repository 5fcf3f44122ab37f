package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sogsync/internal/logger"
)

// spyPoller counts PollServer calls per server and can return an error.
type spyPoller struct {
	calls atomic.Int64
	err   error
}

func (s *spyPoller) PollServer(_ context.Context, _ string) error {
	s.calls.Add(1)
	return s.err
}

func TestPollJob_Start_PollsAllServers(t *testing.T) {
	spy := &spyPoller{}
	job := NewPollJob(spy, []string{"https://a.example", "https://b.example"}, logger.Nop())

	// the first cycle runs immediately, so even a long interval produces calls
	job.Start(context.Background(), time.Minute)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(2), spy.calls.Load(), "one immediate cycle over two servers")
}

func TestPollJob_Start_Ticks(t *testing.T) {
	spy := &spyPoller{}
	job := NewPollJob(spy, []string{"https://a.example"}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestPollJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyPoller{}
	job := NewPollJob(spy, []string{"https://a.example"}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no new cycles after Stop")
}

func TestPollJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewPollJob(&spyPoller{}, nil, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestPollJob_PollError_DoesNotStopJob(t *testing.T) {
	spy := &spyPoller{err: assert.AnError}
	job := NewPollJob(spy, []string{"https://a.example"}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "cycles keep running despite errors: %d", got)
}

func TestPollJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyPoller{}
	job := NewPollJob(spy, []string{"https://a.example"}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
