package traffic

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegors/eco-flight/pkg/logger"
)

type stubFetcher struct {
	mu    sync.Mutex
	feeds []*RawFeed
	errs  []error
	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context) (*RawFeed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.feeds) {
		return s.feeds[i], nil
	}
	if len(s.feeds) > 0 {
		return s.feeds[len(s.feeds)-1], nil
	}
	return &RawFeed{}, nil
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestServiceInitialSnapshotUnavailable(t *testing.T) {
	svc := NewService(&stubFetcher{}, time.Minute, nil, logger.NewNop())

	snap := svc.Snapshot()
	assert.Equal(t, StatusUnavailable, snap.Status)
	assert.Empty(t, snap.Flights)
	assert.NotNil(t, snap.Flights)
}

func TestServiceFetchesImmediatelyOnStart(t *testing.T) {
	fetcher := &stubFetcher{feeds: []*RawFeed{{
		Time:   1700000000,
		States: [][]any{fullVector()},
	}}}
	svc := NewService(fetcher, time.Hour, nil, logger.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return svc.Snapshot().Status == StatusOK
	}, time.Second, 10*time.Millisecond)

	snap := svc.Snapshot()
	require.Len(t, snap.Flights, 1)
	assert.Equal(t, "4b1617", snap.Flights[0].ICAO24)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestServiceFailSoftOnFetchError(t *testing.T) {
	fetcher := &stubFetcher{errs: []error{fmt.Errorf("connection refused")}}
	svc := NewService(fetcher, time.Hour, nil, logger.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return fetcher.callCount() >= 1 && !svc.Snapshot().FetchedAt.IsZero()
	}, time.Second, 10*time.Millisecond)

	snap := svc.Snapshot()
	assert.Equal(t, StatusUnavailable, snap.Status)
	assert.Empty(t, snap.Flights)
	assert.NotNil(t, snap.Flights)
}

func TestServiceReplacesSnapshotWholesale(t *testing.T) {
	first := fullVector()
	second := fullVector()
	second[idxICAO24] = "ddd444"

	fetcher := &stubFetcher{feeds: []*RawFeed{
		{States: [][]any{first, second}},
		{States: [][]any{second}},
	}}
	svc := NewService(fetcher, 20*time.Millisecond, nil, logger.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return fetcher.callCount() >= 2 && len(svc.Snapshot().Flights) == 1
	}, time.Second, 5*time.Millisecond)

	snap := svc.Snapshot()
	require.Len(t, snap.Flights, 1)
	assert.Equal(t, "ddd444", snap.Flights[0].ICAO24)
}

func TestServiceStopHaltsPolling(t *testing.T) {
	fetcher := &stubFetcher{}
	svc := NewService(fetcher, 10*time.Millisecond, nil, logger.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	require.Eventually(t, func() bool {
		return fetcher.callCount() >= 1
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	calls := fetcher.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, fetcher.callCount())
}
