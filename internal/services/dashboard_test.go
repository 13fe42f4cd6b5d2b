package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-console/internal/entities"
)

type fakeDashboardAPI struct {
	mu        sync.Mutex
	stats     *entities.DashboardStats
	statsErr  error
	sites     []entities.Site
	sitesErr  error
	engineers []entities.User
	engErr    error

	statsCalls int
	fetched    chan struct{}
}

func (f *fakeDashboardAPI) GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	if f.fetched != nil {
		select {
		case f.fetched <- struct{}{}:
		default:
		}
	}
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeDashboardAPI) ListSites(ctx context.Context) ([]entities.Site, error) {
	if f.sitesErr != nil {
		return nil, f.sitesErr
	}
	return f.sites, nil
}

func (f *fakeDashboardAPI) ListEngineers(ctx context.Context) ([]entities.User, error) {
	if f.engErr != nil {
		return nil, f.engErr
	}
	return f.engineers, nil
}

func (f *fakeDashboardAPI) setStatsErr(err error) {
	f.mu.Lock()
	f.statsErr = err
	f.mu.Unlock()
}

func TestDashboardService_GetDashboard(t *testing.T) {
	api := &fakeDashboardAPI{
		stats:     &entities.DashboardStats{TotalTickets: 42, OpenTickets: 7},
		sites:     []entities.Site{{ID: "hq", Name: "Headquarters"}},
		engineers: []entities.User{{ID: 1, FullName: "Alice Ivanova"}},
	}
	svc := NewDashboardService(api, zap.NewNop())

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Stats)
	assert.Equal(t, int64(42), result.Stats.TotalTickets)
	assert.Len(t, result.Sites, 1)
	assert.Len(t, result.Engineers, 1)
	assert.False(t, result.FetchedAt.IsZero())
}

func TestDashboardService_GetDashboard_LegsFailIndependently(t *testing.T) {
	api := &fakeDashboardAPI{
		stats:    &entities.DashboardStats{TotalTickets: 10},
		sitesErr: errors.New("sites unavailable"),
		engineers: []entities.User{
			{ID: 2, FullName: "Bob Petrov"},
		},
	}
	svc := NewDashboardService(api, zap.NewNop())

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Stats)
	assert.Empty(t, result.Sites)
	assert.Len(t, result.Engineers, 1)
}

func TestDashboardService_GetDashboard_ServesLastSnapshotOnStatsFailure(t *testing.T) {
	api := &fakeDashboardAPI{
		stats: &entities.DashboardStats{TotalTickets: 100},
	}
	svc := NewDashboardService(api, zap.NewNop())

	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	api.setStatsErr(errors.New("platform down"))

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Stats)
	assert.Equal(t, int64(100), result.Stats.TotalTickets)
}

func TestDashboardService_GetDashboard_NoSnapshotYet(t *testing.T) {
	api := &fakeDashboardAPI{statsErr: errors.New("platform down")}
	svc := NewDashboardService(api, zap.NewNop())

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result.Stats)
}

func TestDashboardService_Polling(t *testing.T) {
	api := &fakeDashboardAPI{
		stats:   &entities.DashboardStats{TotalTickets: 5},
		fetched: make(chan struct{}, 4),
	}
	svc := NewDashboardService(api, zap.NewNop())

	svc.StartPolling(5 * time.Millisecond)
	defer svc.StopPolling()

	for i := 0; i < 2; i++ {
		select {
		case <-api.fetched:
		case <-time.After(time.Second):
			t.Fatal("poller never fetched")
		}
	}

	require.Eventually(t, func() bool {
		return svc.Snapshot() != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(5), svc.Snapshot().TotalTickets)
}

func TestDashboardService_PollingKeepsSnapshotOnFailure(t *testing.T) {
	api := &fakeDashboardAPI{
		stats:   &entities.DashboardStats{TotalTickets: 9},
		fetched: make(chan struct{}, 8),
	}
	svc := NewDashboardService(api, zap.NewNop())

	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	api.setStatsErr(errors.New("flaky"))
	svc.StartPolling(5 * time.Millisecond)
	defer svc.StopPolling()

	select {
	case <-api.fetched:
	case <-time.After(time.Second):
		t.Fatal("poller never fetched")
	}

	require.NotNil(t, svc.Snapshot())
	assert.Equal(t, int64(9), svc.Snapshot().TotalTickets)
}
