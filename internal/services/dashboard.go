package services

import (
	"context"
	"sync"
	"time"

	"asset-console/internal/dto"
	"asset-console/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardAPI interface {
	GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error)
	ListSites(ctx context.Context) ([]entities.Site, error)
	ListEngineers(ctx context.Context) ([]entities.User, error)
}

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
	StartPolling(interval time.Duration)
	StopPolling()
}

type DashboardService struct {
	api    dashboardAPI
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *entities.DashboardStats
	fetched  time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

func NewDashboardService(api dashboardAPI, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		api:    api,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// GetDashboard loads sites, engineers and stats concurrently; each leg is
// independently retryable by the client, so a failed leg comes back empty
// while the others still render. Stats fall back to the poller's last
// snapshot when the live fetch fails.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		stats     *entities.DashboardStats
		sites     []entities.Site
		engineers []entities.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if stats, err = s.api.GetDashboardStats(gctx); err != nil {
			s.logger.Warn("dashboard: stats fetch failed, serving last snapshot", zap.Error(err))
			stats = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sites, err = s.api.ListSites(gctx); err != nil {
			s.logger.Warn("dashboard: sites fetch failed", zap.Error(err))
			sites = []entities.Site{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if engineers, err = s.api.ListEngineers(gctx); err != nil {
			s.logger.Warn("dashboard: engineers fetch failed", zap.Error(err))
			engineers = []entities.User{}
		}
		return nil
	})
	_ = g.Wait()

	if stats != nil {
		s.storeSnapshot(stats)
	} else {
		stats = s.Snapshot()
	}

	s.mu.RLock()
	fetched := s.fetched
	s.mu.RUnlock()

	return &dto.DashboardDTO{
		Stats:     stats,
		Sites:     sites,
		Engineers: engineers,
		FetchedAt: fetched,
	}, nil
}

// StartPolling refreshes the stats snapshot on a fixed interval. Ticks never
// stack: each completed fetch simply overwrites the snapshot
// (last-writer-wins, the data is an idempotent projection), and a failed
// tick keeps the previous snapshot.
func (s *DashboardService) StartPolling(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				stats, err := s.api.GetDashboardStats(ctx)
				cancel()
				if err != nil {
					s.logger.Warn("dashboard poll failed", zap.Error(err))
					continue
				}
				s.storeSnapshot(stats)
			}
		}
	}()
}

func (s *DashboardService) StopPolling() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *DashboardService) storeSnapshot(stats *entities.DashboardStats) {
	s.mu.Lock()
	s.snapshot = stats
	s.fetched = time.Now()
	s.mu.Unlock()
}

// Snapshot returns the last successfully fetched stats, or nil before the
// first success.
func (s *DashboardService) Snapshot() *entities.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
