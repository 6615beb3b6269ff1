package service

import (
	"context"
	"log/slog"

	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/helper"
)

// PhotoService decides where an attached photo payload lives. In inline mode
// the data URI is kept verbatim inside the record, no size bound applied. In
// s3 mode the payload is decoded, written to the bucket, and replaced by its
// public URL.
type PhotoService struct {
	storage *adapter.StorageAdapter
	cfg     *config.AppConfig
}

func NewPhotoService(storage *adapter.StorageAdapter, cfg *config.AppConfig) *PhotoService {
	return &PhotoService{
		storage: storage,
		cfg:     cfg,
	}
}

// Process never fails the surrounding submit: when offload is unavailable or
// the payload cannot be decoded, the payload is stored inline as-is.
func (s *PhotoService) Process(ctx context.Context, payload string) string {
	if !s.cfg.PhotoOffloadEnabled() || s.storage == nil || !s.storage.Enabled() {
		return payload
	}
	if !helper.IsDataURI(payload) {
		// Already a URL (e.g. an edit round-tripping a stored reference).
		return payload
	}

	data, contentType, err := helper.ParseImageDataURI(payload)
	if err != nil {
		slog.Warn("Photo payload is not a decodable data URI, keeping it inline", "error", err)
		return payload
	}

	key := helper.GeneratePhotoObjectKey(s.cfg.PhotoPrefix, contentType)
	if err := s.storage.StorePhoto(ctx, data, contentType, key); err != nil {
		slog.Warn("Failed to offload photo to object storage, keeping it inline", "error", err)
		return payload
	}

	return s.storage.GetPublicURL(key)
}
