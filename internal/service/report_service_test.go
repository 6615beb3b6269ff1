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
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/constant"
	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
)

func newTestReportService(store *MockReportStore, publisher *MockPublisher) *ReportService {
	cfg := &config.AppConfig{PhotoStorageMode: "inline"}
	photos := NewPhotoService(nil, cfg)
	return NewReportService(store, publisher, photos, nil, cfg, config.NewValidator())
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	store := new(MockReportStore)
	svc := newTestReportService(store, new(MockPublisher))

	_, err := svc.Create(context.Background(), model.CreateReportRequest{
		Title:       "",
		Description: "berlubang parah",
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRejectsWhitespaceOnlyDescription(t *testing.T) {
	store := new(MockReportStore)
	svc := newTestReportService(store, new(MockPublisher))

	_, err := svc.Create(context.Background(), model.CreateReportRequest{
		Title:       "Jalan rusak",
		Description: "   \t ",
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Title and description are required", appErr.Message)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTrimsAndDefaultsCategory(t *testing.T) {
	store := new(MockReportStore)
	publisher := new(MockPublisher)
	svc := newTestReportService(store, publisher)

	id := uuid.New()
	now := time.Now().UTC()
	row := reportRow(id, "Jalan rusak", "jalan", &now)

	store.On("Create", mock.Anything, mock.MatchedBy(func(fields model.ReportFields) bool {
		return fields.Title == "Jalan rusak" &&
			fields.Description == "berlubang parah" &&
			fields.Category == constant.DefaultCategory
	})).Return(row, nil)
	publisher.On("Publish", mock.Anything, constant.ReportsChangedChannel, mock.Anything).Return(nil)

	dto, err := svc.Create(context.Background(), model.CreateReportRequest{
		Title:       "  Jalan rusak  ",
		Description: " berlubang parah ",
	})

	assert.NoError(t, err)
	assert.Equal(t, id.String(), dto.ID)
	assert.Equal(t, now.Format(time.RFC3339), dto.Timestamp)
	publisher.AssertCalled(t, "Publish", mock.Anything, constant.ReportsChangedChannel, mock.Anything)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	store := new(MockReportStore)
	svc := newTestReportService(store, new(MockPublisher))

	_, err := svc.Create(context.Background(), model.CreateReportRequest{
		Title:       "Jalan rusak",
		Description: "berlubang",
		Category:    "trotoar",
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateStoreFailure(t *testing.T) {
	store := new(MockReportStore)
	publisher := new(MockPublisher)
	svc := newTestReportService(store, publisher)

	store.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Create(context.Background(), model.CreateReportRequest{
		Title:       "Jalan rusak",
		Description: "berlubang",
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Failed to save report", appErr.Message)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUnknownReport(t *testing.T) {
	store := new(MockReportStore)
	svc := newTestReportService(store, new(MockPublisher))

	store.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})

	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateReportRequest{
		Title:       "Jalan rusak",
		Description: "berlubang",
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateKeepsStoredTimestamp(t *testing.T) {
	store := new(MockReportStore)
	publisher := new(MockPublisher)
	svc := newTestReportService(store, publisher)

	id := uuid.New()
	created := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	row := reportRow(id, "Jalan diperbaiki", "jalan", &created)

	store.On("Update", mock.Anything, id, mock.Anything).Return(row, nil)
	publisher.On("Publish", mock.Anything, constant.ReportsChangedChannel, mock.Anything).Return(nil)

	dto, err := svc.Update(context.Background(), id, model.UpdateReportRequest{
		Title:       "Jalan diperbaiki",
		Description: "sudah ditambal",
	})

	assert.NoError(t, err)
	assert.Equal(t, created.Format(time.RFC3339), dto.Timestamp)
}

func TestDeletePublishesChange(t *testing.T) {
	store := new(MockReportStore)
	publisher := new(MockPublisher)
	svc := newTestReportService(store, publisher)

	id := uuid.New()
	store.On("Delete", mock.Anything, id).Return(nil)
	publisher.On("Publish", mock.Anything, constant.ReportsChangedChannel, mock.Anything).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
	publisher.AssertCalled(t, "Publish", mock.Anything, constant.ReportsChangedChannel, mock.Anything)
}

func TestDeleteStoreFailure(t *testing.T) {
	store := new(MockReportStore)
	publisher := new(MockPublisher)
	svc := newTestReportService(store, publisher)

	store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	err := svc.Delete(context.Background(), uuid.New())

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUnknownReport(t *testing.T) {
	store := new(MockReportStore)
	svc := newTestReportService(store, new(MockPublisher))

	store.On("Get", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})

	_, err := svc.Get(context.Background(), uuid.New())

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestReportToDTOMissingTimestamp(t *testing.T) {
	fallback := fixedNow()
	row := reportRow(uuid.New(), "tanpa waktu", "lainnya", nil)

	dto := reportToDTO(row, fallback)
	assert.Equal(t, fallback.Format(time.RFC3339), dto.Timestamp)
}
