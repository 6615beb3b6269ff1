package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ricotama/LAPORin/internal/constant"
	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
)

// DraftStore keeps transient drafts. Implemented by repository.DraftRepository.
type DraftStore interface {
	Save(ctx context.Context, draft *model.DraftDTO) error
	Get(ctx context.Context, id string) (*model.DraftDTO, error)
	Delete(ctx context.Context, id string) error
	BeginSubmit(ctx context.Context, id string) (bool, error)
	EndSubmit(ctx context.Context, id string) error
}

// ReportWriter is the slice of the report service a submit needs.
type ReportWriter interface {
	Create(ctx context.Context, req model.CreateReportRequest) (*model.ReportDTO, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest) (*model.ReportDTO, error)
}

// ReportReader resolves the report a draft starts editing from.
type ReportReader interface {
	Get(ctx context.Context, id uuid.UUID) (*model.ReportDTO, error)
}

// DraftService manages the form state of a report being authored. A draft is
// either in create mode or in edit mode; edit mode pins the target report and
// the creation timestamp captured when editing began, so the timestamp
// survives the edit untouched.
type DraftService struct {
	drafts    DraftStore
	writer    ReportWriter
	reader    ReportReader
	validator *validator.Validate
}

func NewDraftService(drafts DraftStore, writer ReportWriter, reader ReportReader, validator *validator.Validate) *DraftService {
	return &DraftService{
		drafts:    drafts,
		writer:    writer,
		reader:    reader,
		validator: validator,
	}
}

// defaultDraft is the pristine form: default category, the default map
// position, everything else empty, create mode.
func defaultDraft(id string) *model.DraftDTO {
	return &model.DraftDTO{
		ID:        id,
		Category:  constant.DefaultCategory,
		Latitude:  constant.DefaultLatitude,
		Longitude: constant.DefaultLongitude,
	}
}

// Start opens a new draft. Without a report id it starts blank in create
// mode; with one it pre-populates every field from the stored report and
// enters edit mode.
func (s *DraftService) Start(ctx context.Context, req model.StartDraftRequest) (*model.DraftDTO, error) {
	draft := defaultDraft(uuid.NewString())

	if req.ReportID != nil && *req.ReportID != "" {
		reportID, err := uuid.Parse(*req.ReportID)
		if err != nil {
			return nil, helper.NewBadRequestError("Invalid report id")
		}

		report, err := s.reader.Get(ctx, reportID)
		if err != nil {
			return nil, err
		}

		draft.Title = report.Title
		draft.Description = report.Description
		draft.Category = report.Category
		draft.Latitude = report.Latitude
		draft.Longitude = report.Longitude
		draft.Address = report.Address
		draft.PhotoURL = report.PhotoURL
		draft.EditingTarget = &model.EditingTargetDTO{
			ReportID:  report.ID,
			Timestamp: report.Timestamp,
		}
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		slog.Error("Failed to save draft", "error", err)
		return nil, helper.NewInternalServerError("Failed to save draft")
	}

	return draft, nil
}

func (s *DraftService) Get(ctx context.Context, id string) (*model.DraftDTO, error) {
	return s.load(ctx, id)
}

// UpdateFields overwrites only the fields present in the request. Absent
// fields keep their current value; one field never clobbers another.
func (s *DraftService) UpdateFields(ctx context.Context, id string, req model.UpdateDraftFieldsRequest) (*model.DraftDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Category != nil {
		draft.Category = *req.Category
	}
	if req.Latitude != nil {
		draft.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		draft.Longitude = *req.Longitude
	}
	if req.Address != nil {
		draft.Address = *req.Address
	}

	return s.save(ctx, draft)
}

// AttachPhoto stores the photo payload on the draft as-is. Any offloading
// happens at submit time, not here.
func (s *DraftService) AttachPhoto(ctx context.Context, id string, req model.AttachPhotoRequest) (*model.DraftDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	photo := req.Photo
	draft.PhotoURL = &photo
	return s.save(ctx, draft)
}

func (s *DraftService) AttachLocation(ctx context.Context, id string, req model.AttachLocationRequest) (*model.DraftDTO, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.Latitude = req.Latitude
	draft.Longitude = req.Longitude
	return s.save(ctx, draft)
}

// Cancel resets the draft to the pristine form. An edit draft drops its
// target and returns to create mode; the draft id stays valid.
func (s *DraftService) Cancel(ctx context.Context, id string) (*model.DraftDTO, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	return s.save(ctx, defaultDraft(id))
}

// Submit turns the draft into a stored report. Validation runs before any
// store contact; a failed submit keeps the draft intact so nothing typed is
// lost, and a successful one resets it to the pristine form. Concurrent
// submits of the same draft are refused while the first is in flight.
func (s *DraftService) Submit(ctx context.Context, id string) (*model.ReportDTO, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Description) == "" {
		return nil, helper.NewBadRequestError("Title and description are required")
	}

	acquired, err := s.drafts.BeginSubmit(ctx, id)
	if err != nil {
		slog.Error("Failed to acquire submit guard", "error", err)
		return nil, helper.NewInternalServerError("Failed to submit draft")
	}
	if !acquired {
		return nil, helper.NewConflictError("Submit already in progress")
	}
	defer func() {
		if err := s.drafts.EndSubmit(ctx, id); err != nil {
			slog.Warn("Failed to release submit guard", "error", err)
		}
	}()

	var report *model.ReportDTO
	if draft.EditingTarget == nil {
		report, err = s.writer.Create(ctx, model.CreateReportRequest{
			Title:       draft.Title,
			Description: draft.Description,
			Category:    draft.Category,
			Latitude:    draft.Latitude,
			Longitude:   draft.Longitude,
			Address:     draft.Address,
			PhotoURL:    draft.PhotoURL,
		})
	} else {
		var targetID uuid.UUID
		targetID, err = uuid.Parse(draft.EditingTarget.ReportID)
		if err != nil {
			return nil, helper.NewBadRequestError("Invalid report id")
		}
		report, err = s.writer.Update(ctx, targetID, model.UpdateReportRequest{
			Title:       draft.Title,
			Description: draft.Description,
			Category:    draft.Category,
			Latitude:    draft.Latitude,
			Longitude:   draft.Longitude,
			Address:     draft.Address,
			PhotoURL:    draft.PhotoURL,
		})
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.save(ctx, defaultDraft(id)); err != nil {
		slog.Warn("Failed to reset draft after submit", "id", id, "error", err)
	}

	return report, nil
}

func (s *DraftService) load(ctx context.Context, id string) (*model.DraftDTO, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		slog.Error("Failed to load draft", "error", err)
		return nil, helper.NewInternalServerError("Failed to load draft")
	}
	if draft == nil {
		return nil, helper.NewNotFoundError("Draft not found or expired")
	}
	return draft, nil
}

func (s *DraftService) save(ctx context.Context, draft *model.DraftDTO) (*model.DraftDTO, error) {
	if err := s.drafts.Save(ctx, draft); err != nil {
		slog.Error("Failed to save draft", "error", err)
		return nil, helper.NewInternalServerError("Failed to save draft")
	}
	return draft, nil
}
