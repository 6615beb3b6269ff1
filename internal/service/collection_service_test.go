package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/ent/report"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func reportRow(id uuid.UUID, title string, category string, ts *time.Time) *ent.Report {
	return &ent.Report{
		ID:          id,
		Title:       title,
		Description: "desc",
		Category:    report.Category(category),
		Latitude:    -7.7956,
		Longitude:   110.3695,
		Timestamp:   ts,
	}
}

func tsPtr(t time.Time) *time.Time {
	return &t
}

func TestRefreshSortsNewestFirst(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)

	older := reportRow(uuid.New(), "older", "jalan", tsPtr(fixedNow().Add(-2*time.Hour)))
	newer := reportRow(uuid.New(), "newer", "jembatan", tsPtr(fixedNow().Add(-1*time.Hour)))

	store.On("List", mock.Anything).Return([]*ent.Report{older, newer}, nil)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow

	err := svc.Refresh(context.Background())
	assert.NoError(t, err)

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.Equal(t, "newer", snapshot[0].Title)
	assert.Equal(t, "older", snapshot[1].Title)
	broadcaster.AssertCalled(t, "BroadcastSnapshot", mock.Anything)
}

func TestRefreshBreaksTimestampTiesByID(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)

	ts := tsPtr(fixedNow().Add(-time.Hour))
	low := reportRow(uuid.MustParse("11111111-1111-7111-8111-111111111111"), "low", "jalan", ts)
	high := reportRow(uuid.MustParse("99999999-9999-7999-8999-999999999999"), "high", "jalan", ts)

	store.On("List", mock.Anything).Return([]*ent.Report{low, high}, nil)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow

	assert.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	assert.Equal(t, "high", snapshot[0].Title)
	assert.Equal(t, "low", snapshot[1].Title)
}

func TestRefreshDefaultsMissingTimestamp(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)

	dated := reportRow(uuid.New(), "dated", "jalan", tsPtr(fixedNow().Add(-time.Hour)))
	undated := reportRow(uuid.New(), "undated", "jalan", nil)

	store.On("List", mock.Anything).Return([]*ent.Report{dated, undated}, nil)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow

	assert.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	// The substituted timestamp is "now", so the undated row sorts first.
	assert.Equal(t, "undated", snapshot[0].Title)
	assert.Equal(t, fixedNow().Format(time.RFC3339), snapshot[0].Timestamp)
}

func TestRefreshReplacesWholesale(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()

	first := []*ent.Report{
		reportRow(uuid.New(), "one", "jalan", tsPtr(fixedNow().Add(-time.Hour))),
		reportRow(uuid.New(), "two", "jalan", tsPtr(fixedNow().Add(-2*time.Hour))),
	}
	second := []*ent.Report{
		reportRow(uuid.New(), "three", "lampu", tsPtr(fixedNow().Add(-time.Minute))),
	}

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow

	store.On("List", mock.Anything).Return(first, nil).Once()
	assert.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.Snapshot(), 2)

	store.On("List", mock.Anything).Return(second, nil).Once()
	assert.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot, 1)
	assert.Equal(t, "three", snapshot[0].Title)
}

func TestRefreshKeepsCacheOnStoreError(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()

	rows := []*ent.Report{reportRow(uuid.New(), "kept", "jalan", tsPtr(fixedNow()))}

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow

	store.On("List", mock.Anything).Return(rows, nil).Once()
	assert.NoError(t, svc.Refresh(context.Background()))

	store.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	assert.Error(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot, 1)
	assert.Equal(t, "kept", snapshot[0].Title)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()
	store.On("List", mock.Anything).Return([]*ent.Report{
		reportRow(uuid.New(), "original", "jalan", tsPtr(fixedNow())),
	}, nil)

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow
	assert.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "original", svc.Snapshot()[0].Title)
}

func TestStatsCountsPerCategory(t *testing.T) {
	store := new(MockReportStore)
	broadcaster := new(MockBroadcaster)
	broadcaster.On("BroadcastSnapshot", mock.Anything).Return()
	store.On("List", mock.Anything).Return([]*ent.Report{
		reportRow(uuid.New(), "a", "jalan", tsPtr(fixedNow().Add(-1*time.Hour))),
		reportRow(uuid.New(), "b", "jalan", tsPtr(fixedNow().Add(-2*time.Hour))),
		reportRow(uuid.New(), "c", "drainase", tsPtr(fixedNow().Add(-3*time.Hour))),
	}, nil)

	svc := NewCollectionService(store, nil, broadcaster)
	svc.now = fixedNow
	assert.NoError(t, svc.Refresh(context.Background()))

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Categories["jalan"])
	assert.Equal(t, 1, stats.Categories["drainase"])
	assert.Equal(t, 0, stats.Categories["lampu"])
	assert.Equal(t, 0, stats.Categories["jembatan"])
	assert.Equal(t, 0, stats.Categories["lainnya"])
}

func TestStatsEmptyCollection(t *testing.T) {
	svc := NewCollectionService(new(MockReportStore), nil, nil)

	stats := svc.Stats()
	assert.Equal(t, 0, stats.Total)
	assert.Len(t, stats.Categories, 5)
}
