package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/model"
)

// MockReportStore implements ReportStore and ReportLister with testify/mock
// so each test can set expectations without a database.
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) List(ctx context.Context) ([]*ent.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Report), args.Error(1)
}

func (m *MockReportStore) Get(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Report), args.Error(1)
}

func (m *MockReportStore) Create(ctx context.Context, fields model.ReportFields) (*ent.Report, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Report), args.Error(1)
}

func (m *MockReportStore) Update(ctx context.Context, id uuid.UUID, fields model.ReportFields) (*ent.Report, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Report), args.Error(1)
}

func (m *MockReportStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, payload string) error {
	args := m.Called(ctx, channel, payload)
	return args.Error(0)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastSnapshot(reports []model.ReportDTO) {
	m.Called(reports)
}

type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Save(ctx context.Context, draft *model.DraftDTO) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*model.DraftDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DraftDTO), args.Error(1)
}

func (m *MockDraftStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDraftStore) BeginSubmit(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDraftStore) EndSubmit(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Create(ctx context.Context, req model.CreateReportRequest) (*model.ReportDTO, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDTO), args.Error(1)
}

func (m *MockReportWriter) Update(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest) (*model.ReportDTO, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDTO), args.Error(1)
}

type MockReportReader struct {
	mock.Mock
}

func (m *MockReportReader) Get(ctx context.Context, id uuid.UUID) (*model.ReportDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDTO), args.Error(1)
}
