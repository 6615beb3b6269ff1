package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/constant"
	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
)

// ReportStore is the persisted report collection. Implemented by
// repository.ReportRepository.
type ReportStore interface {
	Get(ctx context.Context, id uuid.UUID) (*ent.Report, error)
	Create(ctx context.Context, fields model.ReportFields) (*ent.Report, error)
	Update(ctx context.Context, id uuid.UUID, fields model.ReportFields) (*ent.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChangePublisher announces collection changes to snapshot listeners.
// Implemented by adapter.RedisAdapter.
type ChangePublisher interface {
	Publish(ctx context.Context, channel string, payload string) error
}

type ReportService struct {
	store     ReportStore
	publisher ChangePublisher
	photos    *PhotoService
	email     *adapter.EmailAdapter
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewReportService(store ReportStore, publisher ChangePublisher, photos *PhotoService, email *adapter.EmailAdapter, cfg *config.AppConfig, validator *validator.Validate) *ReportService {
	return &ReportService{
		store:     store,
		publisher: publisher,
		photos:    photos,
		email:     email,
		cfg:       cfg,
		validator: validator,
	}
}

// Create writes a brand new report. The store assigns the id and stamps the
// creation time.
func (s *ReportService) Create(ctx context.Context, req model.CreateReportRequest) (*model.ReportDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	fields, err := s.prepareFields(ctx, model.ReportFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.store.Create(ctx, fields)
	if err != nil {
		slog.Error("Failed to create report", "error", err)
		return nil, helper.NewInternalServerError("Failed to save report")
	}

	s.publishChanged()

	dto := reportToDTO(row, time.Now().UTC())
	s.notifyCreated(dto)

	return &dto, nil
}

// Update overwrites an existing report field-by-field. The creation
// timestamp survives the edit untouched.
func (s *ReportService) Update(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest) (*model.ReportDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	fields, err := s.prepareFields(ctx, model.ReportFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	row, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to update report", "error", err, "id", id)
		return nil, helper.NewInternalServerError("Failed to save report")
	}

	s.publishChanged()

	dto := reportToDTO(row, time.Now().UTC())
	return &dto, nil
}

// Delete removes a report. An unknown id is a success: the store contract is
// idempotent delete.
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		slog.Error("Failed to delete report", "error", err, "id", id)
		return helper.NewInternalServerError("Failed to delete report")
	}

	s.publishChanged()
	return nil
}

func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*model.ReportDTO, error) {
	row, err := s.store.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to load report", "error", err, "id", id)
		return nil, helper.NewInternalServerError("")
	}

	dto := reportToDTO(row, time.Now().UTC())
	return &dto, nil
}

// prepareFields enforces the only hard validation the system has: title and
// description must be non-empty after trimming. Nothing is written to the
// store when it fails.
func (s *ReportService) prepareFields(ctx context.Context, fields model.ReportFields) (model.ReportFields, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Description = strings.TrimSpace(fields.Description)

	if fields.Title == "" || fields.Description == "" {
		return model.ReportFields{}, helper.NewBadRequestError("Title and description are required")
	}

	if fields.Category == "" {
		fields.Category = constant.DefaultCategory
	}
	if !constant.IsValidCategory(fields.Category) {
		return model.ReportFields{}, helper.NewBadRequestError("Unknown report category")
	}

	if fields.PhotoURL != nil && *fields.PhotoURL != "" {
		processed := s.photos.Process(ctx, *fields.PhotoURL)
		fields.PhotoURL = &processed
	} else {
		fields.PhotoURL = nil
	}

	return fields, nil
}

func (s *ReportService) publishChanged() {
	// Deliberately detached from the request context: the write has already
	// committed, listeners must hear about it even if the caller went away.
	if err := s.publisher.Publish(context.Background(), constant.ReportsChangedChannel, "changed"); err != nil {
		slog.Warn("Failed to publish collection change", "error", err)
	}
}

func (s *ReportService) notifyCreated(dto model.ReportDTO) {
	if s.email == nil || !s.email.Enabled() || s.cfg.NotifyRecipient == "" {
		return
	}

	go func() {
		subject := fmt.Sprintf("Laporan baru: %s", dto.Title)
		body := fmt.Sprintf(
			"<p>Laporan baru masuk.</p><p><b>%s</b> (%s)<br>%s<br>Lokasi: %f, %f</p>",
			dto.Title, dto.Category, dto.Description, dto.Latitude, dto.Longitude,
		)
		if err := s.email.Send([]string{s.cfg.NotifyRecipient}, subject, body); err != nil {
			slog.Error("Failed to send new report notification", "error", err)
		}
	}()
}

// reportToDTO decodes a stored row for the wire. A row missing its creation
// timestamp gets the supplied fallback; the stored row is left as it is.
func reportToDTO(row *ent.Report, fallback time.Time) model.ReportDTO {
	ts := fallback
	if row.Timestamp != nil {
		ts = *row.Timestamp
	} else {
		slog.Warn("Report record is missing its timestamp, substituting current time", "id", row.ID)
	}

	return model.ReportDTO{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: row.Description,
		Category:    string(row.Category),
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Address:     row.Address,
		PhotoURL:    row.PhotoURL,
		Timestamp:   ts.UTC().Format(time.RFC3339),
	}
}
