package job

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/ent/report"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
)

// RunPhotoCleanup removes offloaded photos that no report references anymore.
// A report delete or re-upload leaves the old object behind; this sweep picks
// them up once they are older than the retention window, so an object a
// concurrent submit just uploaded is never touched.
func RunPhotoCleanup(ctx context.Context, client *ent.Client, storage *adapter.StorageAdapter, cfg *config.AppConfig) error {
	retentionDays := cfg.PhotoRetentionDays
	if retentionDays < 0 {
		retentionDays = 2.0
	}

	duration := time.Duration(retentionDays * 24 * float64(time.Hour))
	cutoff := time.Now().UTC().Add(-duration)

	slog.Info("Running Photo Cleanup", "retentionDays", retentionDays, "cutoff", cutoff)

	referenced, err := client.Report.Query().
		Where(report.PhotoURLNotNil()).
		Select(report.FieldPhotoURL).
		Strings(ctx)
	if err != nil {
		slog.Error("Failed to query referenced photos", "error", err)
		return err
	}

	objects, err := storage.ListObjects(ctx, cfg.PhotoPrefix)
	if err != nil {
		slog.Error("Failed to list stored photos", "error", err)
		return err
	}

	slog.Info("Found stored photos", "count", len(objects), "referenced", len(referenced))

	deleted := 0
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		if isReferenced(obj.Key, referenced) {
			continue
		}

		if err := storage.Delete(ctx, obj.Key); err != nil {
			slog.Error("Failed to delete orphan photo", "key", obj.Key, "error", err)
			continue
		}

		deleted++
		slog.Info("Deleted orphan photo", "key", obj.Key)
	}

	slog.Info("Photo Cleanup finished", "deleted", deleted)
	return nil
}

// isReferenced matches a stored key against report photo URLs. Photo URLs are
// the public form of the key, so a suffix match on the key is enough. Inline
// data URIs never match a key and are skipped naturally.
func isReferenced(key string, photoURLs []string) bool {
	for _, url := range photoURLs {
		if strings.HasSuffix(url, key) {
			return true
		}
	}
	return false
}
