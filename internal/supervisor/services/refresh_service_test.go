// Reelmind - Hybrid Movie Recommendation Service
// Copyright 2026 Reelmind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmind/reelmind

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reelmind/reelmind/internal/logging"
)

type fakeUpdater struct {
	calls atomic.Int64
	err   error
}

func (f *fakeUpdater) UpdateModel(_ context.Context) (int, int, error) {
	f.calls.Add(1)
	return 2, 5, f.err
}

func TestRefreshServiceStartupRefresh(t *testing.T) {
	updater := &fakeUpdater{}
	svc := NewRefreshService(updater, RefreshServiceConfig{
		Interval:         time.Hour,
		RefreshOnStartup: true,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for updater.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("startup refresh never ran")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestRefreshServicePeriodicTicks(t *testing.T) {
	updater := &fakeUpdater{}
	svc := NewRefreshService(updater, RefreshServiceConfig{
		Interval: 20 * time.Millisecond,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for updater.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("got %d refreshes, want at least 2", updater.calls.Load())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	cancel()
	<-done
}

func TestRefreshServiceSurvivesFailures(t *testing.T) {
	updater := &fakeUpdater{err: errors.New("store down")}
	svc := NewRefreshService(updater, RefreshServiceConfig{
		Interval:         10 * time.Millisecond,
		RefreshOnStartup: true,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline exceeded (failures must not crash the loop)", err)
	}
	if updater.calls.Load() < 2 {
		t.Errorf("got %d refresh attempts, want retries after failure", updater.calls.Load())
	}
}

func TestRefreshServiceDefaults(t *testing.T) {
	svc := NewRefreshService(&fakeUpdater{}, RefreshServiceConfig{}, logging.NewTestLogger(io.Discard))
	if svc.config.Interval != 15*time.Minute {
		t.Errorf("default interval = %v, want 15m", svc.config.Interval)
	}
	if svc.config.Timeout != 5*time.Minute {
		t.Errorf("default timeout = %v, want 5m", svc.config.Timeout)
	}
}
