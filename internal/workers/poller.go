package workers

import (
	"context"
	"sync"
	"time"

	"sogsync/internal/logger"
)

// ServerPoller is the poll-cycle entry point the job drives.
type ServerPoller interface {
	PollServer(ctx context.Context, serverURL string) error
}

// PollJob runs poll cycles against a set of community servers on a ticker.
// The job is idle until Start is called.
type PollJob struct {
	poller  ServerPoller
	servers []string
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPollJob(poller ServerPoller, servers []string, log *logger.Logger) *PollJob {
	return &PollJob{poller: poller, servers: servers, logger: log}
}

// Start stops any previously running job, then launches a background goroutine
// that polls every server each interval. If interval is zero or negative it
// defaults to 30 seconds. The goroutine exits when ctx is cancelled or Stop is
// called. The first cycle runs immediately rather than one interval in.
func (j *PollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.pollAll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.pollAll(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running (no-op in that case).
func (j *PollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// pollAll runs one cycle per server sequentially. A failing server never
// blocks the others past its own cycle.
func (j *PollJob) pollAll(ctx context.Context) {
	for _, server := range j.servers {
		if ctx.Err() != nil {
			return
		}
		if err := j.poller.PollServer(ctx, server); err != nil {
			j.logger.Warn().Err(err).Str("server", server).Msg("poll cycle failed")
		}
	}
}
