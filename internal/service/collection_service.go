package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/constant"
	"github.com/ricotama/LAPORin/internal/model"
)

// ReportLister supplies the full stored collection. Implemented by
// repository.ReportRepository.
type ReportLister interface {
	List(ctx context.Context) ([]*ent.Report, error)
}

// SnapshotBroadcaster fans a rebuilt snapshot out to live subscribers.
// Implemented by websocket.Hub.
type SnapshotBroadcaster interface {
	BroadcastSnapshot(reports []model.ReportDTO)
}

// CollectionService owns the canonical in-memory view of all reports. It is
// rebuilt wholesale from the store on every change notification; there is no
// incremental merge and no separate loading state. Before the first refresh
// the collection is simply empty.
type CollectionService struct {
	store       ReportLister
	redis       *adapter.RedisAdapter
	broadcaster SnapshotBroadcaster

	mu      sync.RWMutex
	reports []model.ReportDTO

	now func() time.Time
}

func NewCollectionService(store ReportLister, redis *adapter.RedisAdapter, broadcaster SnapshotBroadcaster) *CollectionService {
	return &CollectionService{
		store:       store,
		redis:       redis,
		broadcaster: broadcaster,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Run loads the collection once, then keeps it current from the change
// channel until the context ends. The subscription is unbounded: it only
// terminates with the context.
func (s *CollectionService) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		slog.Error("Initial collection load failed", "error", err)
	}

	pubsub := s.redis.Subscribe(ctx, constant.ReportsChangedChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := s.Refresh(ctx); err != nil {
				slog.Error("Collection refresh failed", "error", err)
			}
		}
	}
}

// Refresh replaces the cached collection with a fresh decode of the store
// and broadcasts the result. Rows missing a timestamp are decoded with the
// current time; the stored rows are not repaired.
func (s *CollectionService) Refresh(ctx context.Context) error {
	rows, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	reports := make([]model.ReportDTO, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, reportToDTO(row, now))
	}

	// RFC 3339 UTC strings are fixed-width, so lexicographic order is
	// chronological. Ties fall back to id, which is time-ordered UUIDv7.
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Timestamp != reports[j].Timestamp {
			return reports[i].Timestamp > reports[j].Timestamp
		}
		return reports[i].ID > reports[j].ID
	})

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSnapshot(reports)
	}

	return nil
}

// Snapshot returns a copy of the current collection, newest first.
func (s *CollectionService) Snapshot() []model.ReportDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ReportDTO, len(s.reports))
	copy(out, s.reports)
	return out
}

// Stats tallies the dashboard numbers: total reports and a count per known
// category. Unknown categories contribute to the total only.
func (s *CollectionService) Stats() model.ReportStatsDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(constant.Categories))
	for _, c := range constant.Categories {
		counts[c] = 0
	}

	for _, r := range s.reports {
		if _, ok := counts[r.Category]; ok {
			counts[r.Category]++
		}
	}

	return model.ReportStatsDTO{
		Total:      len(s.reports),
		Categories: counts,
	}
}
