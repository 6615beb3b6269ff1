package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/constant"
	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
)

func newTestDraftService(drafts *MockDraftStore, writer *MockReportWriter, reader *MockReportReader) *DraftService {
	return NewDraftService(drafts, writer, reader, config.NewValidator())
}

func strPtr(s string) *string {
	return &s
}

func TestStartDraftCreateMode(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.Start(context.Background(), model.StartDraftRequest{})

	assert.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
	assert.Empty(t, draft.Title)
	assert.Equal(t, constant.DefaultCategory, draft.Category)
	assert.Equal(t, constant.DefaultLatitude, draft.Latitude)
	assert.Equal(t, constant.DefaultLongitude, draft.Longitude)
	assert.Nil(t, draft.EditingTarget)
}

func TestStartDraftEditModeCopiesReport(t *testing.T) {
	drafts := new(MockDraftStore)
	reader := new(MockReportReader)
	svc := newTestDraftService(drafts, new(MockReportWriter), reader)

	reportID := uuid.New()
	stored := &model.ReportDTO{
		ID:          reportID.String(),
		Title:       "Lampu mati",
		Description: "sudah seminggu",
		Category:    "lampu",
		Latitude:    -7.80,
		Longitude:   110.36,
		Address:     "Jl. Malioboro",
		PhotoURL:    strPtr("data:image/jpeg;base64,abc"),
		Timestamp:   "2025-01-10T08:30:00Z",
	}

	reader.On("Get", mock.Anything, reportID).Return(stored, nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	idStr := reportID.String()
	draft, err := svc.Start(context.Background(), model.StartDraftRequest{ReportID: &idStr})

	assert.NoError(t, err)
	assert.Equal(t, "Lampu mati", draft.Title)
	assert.Equal(t, "lampu", draft.Category)
	assert.Equal(t, stored.PhotoURL, draft.PhotoURL)
	assert.NotNil(t, draft.EditingTarget)
	assert.Equal(t, reportID.String(), draft.EditingTarget.ReportID)
	assert.Equal(t, "2025-01-10T08:30:00Z", draft.EditingTarget.Timestamp)
}

func TestStartDraftInvalidReportID(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	bad := "not-a-uuid"
	_, err := svc.Start(context.Background(), model.StartDraftRequest{ReportID: &bad})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetDraftExpired(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	drafts.On("Get", mock.Anything, "gone").Return(nil, nil)

	_, err := svc.Get(context.Background(), "gone")

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateFieldsPartial(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	existing := defaultDraft("d1")
	existing.Title = "Jembatan retak"
	existing.Address = "Jl. Kaliurang"

	drafts.On("Get", mock.Anything, "d1").Return(existing, nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.UpdateFields(context.Background(), "d1", model.UpdateDraftFieldsRequest{
		Description: strPtr("retak melintang"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Jembatan retak", draft.Title)
	assert.Equal(t, "retak melintang", draft.Description)
	assert.Equal(t, "Jl. Kaliurang", draft.Address)
	assert.Equal(t, constant.DefaultCategory, draft.Category)
}

func TestUpdateFieldsRejectsUnknownCategory(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	_, err := svc.UpdateFields(context.Background(), "d1", model.UpdateDraftFieldsRequest{
		Category: strPtr("trotoar"),
	})

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	drafts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAttachPhoto(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	drafts.On("Get", mock.Anything, "d1").Return(defaultDraft("d1"), nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.AttachPhoto(context.Background(), "d1", model.AttachPhotoRequest{
		Photo: "data:image/jpeg;base64,abc",
	})

	assert.NoError(t, err)
	assert.NotNil(t, draft.PhotoURL)
	assert.Equal(t, "data:image/jpeg;base64,abc", *draft.PhotoURL)
}

func TestAttachLocation(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	drafts.On("Get", mock.Anything, "d1").Return(defaultDraft("d1"), nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.AttachLocation(context.Background(), "d1", model.AttachLocationRequest{
		Latitude:  -7.801,
		Longitude: 110.364,
	})

	assert.NoError(t, err)
	assert.Equal(t, -7.801, draft.Latitude)
	assert.Equal(t, 110.364, draft.Longitude)
}

func TestCancelResetsDraft(t *testing.T) {
	drafts := new(MockDraftStore)
	svc := newTestDraftService(drafts, new(MockReportWriter), new(MockReportReader))

	editing := defaultDraft("d1")
	editing.Title = "Lampu mati"
	editing.EditingTarget = &model.EditingTargetDTO{ReportID: uuid.NewString(), Timestamp: "2025-01-10T08:30:00Z"}

	drafts.On("Get", mock.Anything, "d1").Return(editing, nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.Cancel(context.Background(), "d1")

	assert.NoError(t, err)
	assert.Equal(t, "d1", draft.ID)
	assert.Empty(t, draft.Title)
	assert.Nil(t, draft.EditingTarget)
	assert.Equal(t, constant.DefaultCategory, draft.Category)
}

func TestSubmitRejectsBlankFieldsWithoutStoreContact(t *testing.T) {
	drafts := new(MockDraftStore)
	writer := new(MockReportWriter)
	svc := newTestDraftService(drafts, writer, new(MockReportReader))

	blank := defaultDraft("d1")
	blank.Title = "   "
	blank.Description = "ada lubang"
	drafts.On("Get", mock.Anything, "d1").Return(blank, nil)

	_, err := svc.Submit(context.Background(), "d1")

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Title and description are required", appErr.Message)
	drafts.AssertNotCalled(t, "BeginSubmit", mock.Anything, mock.Anything)
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitCreateModeResetsDraft(t *testing.T) {
	drafts := new(MockDraftStore)
	writer := new(MockReportWriter)
	svc := newTestDraftService(drafts, writer, new(MockReportReader))

	draft := defaultDraft("d1")
	draft.Title = "Jalan rusak"
	draft.Description = "berlubang parah"

	created := &model.ReportDTO{ID: uuid.NewString(), Title: "Jalan rusak"}

	drafts.On("Get", mock.Anything, "d1").Return(draft, nil)
	drafts.On("BeginSubmit", mock.Anything, "d1").Return(true, nil)
	drafts.On("EndSubmit", mock.Anything, "d1").Return(nil)
	writer.On("Create", mock.Anything, mock.MatchedBy(func(req model.CreateReportRequest) bool {
		return req.Title == "Jalan rusak" && req.Description == "berlubang parah"
	})).Return(created, nil)
	drafts.On("Save", mock.Anything, mock.MatchedBy(func(d *model.DraftDTO) bool {
		return d.ID == "d1" && d.Title == "" && d.EditingTarget == nil
	})).Return(nil)

	report, err := svc.Submit(context.Background(), "d1")

	assert.NoError(t, err)
	assert.Equal(t, created.ID, report.ID)
	drafts.AssertCalled(t, "EndSubmit", mock.Anything, "d1")
	drafts.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmitEditModeUpdatesTarget(t *testing.T) {
	drafts := new(MockDraftStore)
	writer := new(MockReportWriter)
	svc := newTestDraftService(drafts, writer, new(MockReportReader))

	targetID := uuid.New()
	draft := defaultDraft("d1")
	draft.Title = "Lampu mati"
	draft.Description = "sudah seminggu"
	draft.EditingTarget = &model.EditingTargetDTO{ReportID: targetID.String(), Timestamp: "2025-01-10T08:30:00Z"}

	updated := &model.ReportDTO{ID: targetID.String(), Timestamp: "2025-01-10T08:30:00Z"}

	drafts.On("Get", mock.Anything, "d1").Return(draft, nil)
	drafts.On("BeginSubmit", mock.Anything, "d1").Return(true, nil)
	drafts.On("EndSubmit", mock.Anything, "d1").Return(nil)
	writer.On("Update", mock.Anything, targetID, mock.Anything).Return(updated, nil)
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil)

	report, err := svc.Submit(context.Background(), "d1")

	assert.NoError(t, err)
	assert.Equal(t, targetID.String(), report.ID)
	writer.AssertCalled(t, "Update", mock.Anything, targetID, mock.Anything)
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitAlreadyInFlight(t *testing.T) {
	drafts := new(MockDraftStore)
	writer := new(MockReportWriter)
	svc := newTestDraftService(drafts, writer, new(MockReportReader))

	draft := defaultDraft("d1")
	draft.Title = "Jalan rusak"
	draft.Description = "berlubang"

	drafts.On("Get", mock.Anything, "d1").Return(draft, nil)
	drafts.On("BeginSubmit", mock.Anything, "d1").Return(false, nil)

	_, err := svc.Submit(context.Background(), "d1")

	appErr := &helper.AppError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	drafts.AssertNotCalled(t, "EndSubmit", mock.Anything, mock.Anything)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	drafts := new(MockDraftStore)
	writer := new(MockReportWriter)
	svc := newTestDraftService(drafts, writer, new(MockReportReader))

	draft := defaultDraft("d1")
	draft.Title = "Jalan rusak"
	draft.Description = "berlubang"

	drafts.On("Get", mock.Anything, "d1").Return(draft, nil)
	drafts.On("BeginSubmit", mock.Anything, "d1").Return(true, nil)
	drafts.On("EndSubmit", mock.Anything, "d1").Return(nil)
	writer.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Submit(context.Background(), "d1")

	assert.Error(t, err)
	// No reset: what was typed stays available for the retry.
	drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	drafts.AssertCalled(t, "EndSubmit", mock.Anything, "d1")
}
