// Package locationsync streams device positions to the server for the
// delivery that is currently out for delivery. Sync is best-effort
// telemetry: every sample is either sent or dropped, never queued.
package locationsync

import (
	"context"
	"errors"
	"sync"
	"time"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// ErrPermissionDenied is returned by a PositionObserver whose position
// source refused access.
var ErrPermissionDenied = errors.New("location permission denied")

// Service owns the single global position stream.
type Service struct {
	api         locationAPI
	observer    PositionObserver
	logger      logx.Logger
	clock       Clock
	minInterval time.Duration
	sent        counter
	dropped     counter

	mu        sync.Mutex
	activeID  int64
	streaming bool
	denied    bool
	lastSent  time.Time
}

// NewService wires the stream to its collaborators. A nil clock falls back
// to the system clock; counters may be nil.
func NewService(api locationAPI, observer PositionObserver, logger logx.Logger, clock Clock, minInterval time.Duration, sent, dropped counter) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	if sent == nil {
		sent = nopCounter{}
	}
	if dropped == nil {
		dropped = nopCounter{}
	}
	return &Service{
		api:         api,
		observer:    observer,
		logger:      logger,
		clock:       clock,
		minInterval: minInterval,
		sent:        sent,
		dropped:     dropped,
	}
}

// SetActiveDelivery enables tracking for the given delivery. Calling it
// again while streaming only retargets the stream.
func (s *Service) SetActiveDelivery(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = id
	if s.streaming || s.denied {
		return
	}

	err := s.observer.Start(s.onPosition)
	switch {
	case errors.Is(err, ErrPermissionDenied):
		// report once, then stay silent until the next process start
		s.denied = true
		s.logger.Warn("location permission denied, tracking disabled")
	case err != nil:
		s.logger.Warn("position observer failed to start", logx.Err(err))
	default:
		s.streaming = true
		s.logger.Info("location tracking started", logx.Int64("delivery_id", id))
	}
}

// ClearActiveDelivery stops tracking. Idempotent.
func (s *Service) ClearActiveDelivery() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = 0
	if !s.streaming {
		return
	}
	s.observer.Stop()
	s.streaming = false
	s.logger.Info("location tracking stopped")
}

// Tracking reports whether a stream is currently active.
func (s *Service) Tracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

func (s *Service) onPosition(p domain.Position) {
	s.mu.Lock()
	if !s.streaming || s.activeID == 0 {
		s.mu.Unlock()
		return
	}
	now := s.clock.Now()
	if !s.lastSent.IsZero() && now.Sub(s.lastSent) < s.minInterval {
		s.mu.Unlock()
		s.dropped.Inc()
		return
	}
	s.lastSent = now
	id := s.activeID
	s.mu.Unlock()

	if err := s.api.UpdateLocation(context.Background(), id, domain.SampleFromPosition(p)); err != nil {
		s.dropped.Inc()
		s.logger.Warn("location update discarded",
			logx.Int64("delivery_id", id),
			logx.Err(err),
		)
		return
	}
	s.sent.Inc()
}
