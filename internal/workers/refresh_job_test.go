// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRefreshJob_RefreshesImmediatelyOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresh := mock.NewMockRefreshService(ctrl)

	var wg sync.WaitGroup
	wg.Add(1)
	refresh.EXPECT().FullRefresh(gomock.Any(), "alice").
		DoAndReturn(func(context.Context, string) error {
			wg.Done()
			return nil
		})

	job := workers.NewRefreshJob(refresh, "alice", time.Hour, logger.Nop())
	job.Start(context.Background())
	defer job.Stop()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("initial refresh was not triggered")
	}
}

func TestRefreshJob_KeepsTickingAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresh := mock.NewMockRefreshService(ctrl)

	calls := make(chan struct{}, 8)
	refresh.EXPECT().FullRefresh(gomock.Any(), "alice").
		DoAndReturn(func(context.Context, string) error {
			calls <- struct{}{}
			return adapter.ErrRemoteUnavailable
		}).MinTimes(2)

	job := workers.NewRefreshJob(refresh, "alice", 10*time.Millisecond, logger.Nop())
	job.Start(context.Background())
	defer job.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh stopped ticking after a failure")
		}
	}
}

func TestRefreshJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresh := mock.NewMockRefreshService(ctrl)
	refresh.EXPECT().FullRefresh(gomock.Any(), "alice").Return(nil).AnyTimes()

	job := workers.NewRefreshJob(refresh, "alice", time.Hour, logger.Nop())

	// Stop before Start is a no-op.
	job.Stop()

	job.Start(context.Background())
	job.Stop()
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}
