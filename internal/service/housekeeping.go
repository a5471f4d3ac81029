package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumenlab/whisperbox/internal/store"
)

// HousekeepingService periodically scrubs leftover verification codes from
// verified accounts so stale secrets don't sit in the database forever.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup()

	for {
		select {
		case <-ticker.C:
			s.Cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup performs a single scrub pass. Exposed so tests and operators can
// trigger it directly.
func (s *HousekeepingService) Cleanup() {
	ctx := context.Background()

	n, err := s.Store.Accounts().ScrubVerifiedCodes(ctx)
	if err != nil {
		s.Logger.Error("housekeeping: scrub verification codes", "err", err)
		return
	}
	if n > 0 {
		s.Logger.Info("housekeeping: scrubbed verification codes", "count", n)
	}
}
