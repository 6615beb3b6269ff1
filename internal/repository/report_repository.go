package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/ent/report"
	"github.com/ricotama/LAPORin/internal/model"
)

type ReportRepository struct {
	client *ent.Client
}

func NewReportRepository(client *ent.Client) *ReportRepository {
	return &ReportRepository{
		client: client,
	}
}

// List returns the whole collection, newest first. Rows without a timestamp
// sort to the front here; the collection service re-sorts after substituting
// defaults, so the database order is only a pre-sort.
func (r *ReportRepository) List(ctx context.Context) ([]*ent.Report, error) {
	return r.client.Report.Query().
		Order(ent.Desc(report.FieldTimestamp), ent.Desc(report.FieldID)).
		All(ctx)
}

func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	return r.client.Report.Query().
		Where(report.ID(id)).
		Only(ctx)
}

// Create allocates the identifier and stamps the creation time; both are
// immutable afterwards.
func (r *ReportRepository) Create(ctx context.Context, fields model.ReportFields) (*ent.Report, error) {
	return r.client.Report.Create().
		SetTitle(fields.Title).
		SetDescription(fields.Description).
		SetCategory(report.Category(fields.Category)).
		SetLatitude(fields.Latitude).
		SetLongitude(fields.Longitude).
		SetAddress(fields.Address).
		SetNillablePhotoURL(fields.PhotoURL).
		SetTimestamp(time.Now().UTC()).
		Save(ctx)
}

// Update overwrites every report field except the creation timestamp, which
// the schema declares immutable.
func (r *ReportRepository) Update(ctx context.Context, id uuid.UUID, fields model.ReportFields) (*ent.Report, error) {
	upd := r.client.Report.UpdateOneID(id).
		SetTitle(fields.Title).
		SetDescription(fields.Description).
		SetCategory(report.Category(fields.Category)).
		SetLatitude(fields.Latitude).
		SetLongitude(fields.Longitude).
		SetAddress(fields.Address)

	if fields.PhotoURL != nil {
		upd.SetPhotoURL(*fields.PhotoURL)
	} else {
		upd.ClearPhotoURL()
	}

	return upd.Save(ctx)
}

// Delete is idempotent: removing an id that does not exist is a no-op
// success, matching the store contract.
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Report.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	return nil
}

// ListPhotoURLs returns the photo references currently held by any report,
// for the orphaned-object cleanup job.
func (r *ReportRepository) ListPhotoURLs(ctx context.Context) ([]string, error) {
	return r.client.Report.Query().
		Where(report.PhotoURLNotNil()).
		Select(report.FieldPhotoURL).
		Strings(ctx)
}
