// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
)

// RefreshJob periodically re-pulls the server's record listing into the
// local cache. A failed pull is logged and retried on the next tick; the
// previous cache stays usable in between. The job is idle until Run.
type RefreshJob struct {
	refresh  service.RefreshService
	userID   string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob bound to userID. If interval is zero or
// negative it defaults to 5 minutes.
func NewRefreshJob(refresh service.RefreshService, userID string, interval time.Duration, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RefreshJob{
		refresh:  refresh,
		userID:   userID,
		interval: interval,
		logger:   log.GetChildLogger(),
	}
}

// Run implements Worker. It performs one immediate refresh so the session
// starts with a warm cache, then launches the ticker goroutine.
func (j *RefreshJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that refreshes every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.refreshOnce(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()
}

func (j *RefreshJob) refreshOnce(ctx context.Context) {
	if err := j.refresh.FullRefresh(ctx, j.userID); err != nil {
		j.logger.Warn().Err(err).Msg("periodic listing refresh failed")
	}
}
