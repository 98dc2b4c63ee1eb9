package traffic

import (
	"context"
	"sync"
	"time"

	"github.com/yegors/eco-flight/internal/websocket"
	"github.com/yegors/eco-flight/pkg/logger"
)

// Fetcher abstracts the feed client for the polling service.
type Fetcher interface {
	Fetch(ctx context.Context) (*RawFeed, error)
}

// Service polls the traffic feed on a fixed interval and keeps the latest
// snapshot. Each cycle replaces the snapshot wholesale; there is no merging
// or identity tracking across cycles, so overlapping fetches settle
// last-write-wins.
type Service struct {
	fetcher  Fetcher
	interval time.Duration
	wsServer *websocket.Server
	logger   *logger.Logger

	mu       sync.RWMutex
	snapshot Snapshot

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a traffic service. wsServer may be nil when no push
// channel is wanted.
func NewService(fetcher Fetcher, interval time.Duration, wsServer *websocket.Server, log *logger.Logger) *Service {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Service{
		fetcher:  fetcher,
		interval: interval,
		wsServer: wsServer,
		logger:   log.Named("traffic"),
		snapshot: Snapshot{Status: StatusUnavailable, Flights: []FlightState{}},
	}
}

// Start begins the poll loop: one immediate fetch, then one per interval.
func (s *Service) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.logger.Info("Starting traffic service",
		logger.Duration("interval", s.interval))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.poll(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Traffic poll loop stopped")
				return
			case <-ticker.C:
				s.poll(ctx)
			}
		}
	}()

	return nil
}

// Stop cancels the poll loop and waits for it to exit.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Info("Traffic service stopped")
}

// Snapshot returns the most recent poll result.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// poll runs one fetch cycle. Feed failures are absorbed here: the snapshot
// becomes an empty unavailable one and the error never propagates.
func (s *Service) poll(ctx context.Context) {
	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Traffic fetch failed, serving empty snapshot", logger.Error(err))
		s.setSnapshot(Snapshot{
			FetchedAt: time.Now().UTC(),
			Status:    StatusUnavailable,
			Flights:   []FlightState{},
		})
		return
	}

	flights := Normalize(raw)
	snap := Snapshot{
		FetchedAt: time.Now().UTC(),
		Status:    StatusOK,
		Flights:   flights,
	}
	s.setSnapshot(snap)

	s.logger.Debug("Traffic snapshot updated",
		logger.Int("flight_count", len(flights)))

	if s.wsServer != nil {
		s.wsServer.Broadcast(&websocket.Message{
			Type: websocket.MessageTypeTrafficUpdate,
			Data: map[string]any{
				"fetched_at": snap.FetchedAt,
				"status":     snap.Status,
				"flights":    snap.Flights,
			},
		})
	}
}

func (s *Service) setSnapshot(snap Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}
