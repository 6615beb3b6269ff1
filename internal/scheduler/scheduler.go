package scheduler

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"

	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/scheduler/job"
)

type Scheduler struct {
	cfg            *config.AppConfig
	client         *ent.Client
	cron           *cron.Cron
	storageAdapter *adapter.StorageAdapter
}

func New(cfg *config.AppConfig, client *ent.Client, s3Client *s3.Client) *Scheduler {
	storageAdapter := adapter.NewStorageAdapter(cfg, s3Client)

	return &Scheduler{
		cfg:            cfg,
		client:         client,
		cron:           cron.New(),
		storageAdapter: storageAdapter,
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs() {
	_, err := s.cron.AddFunc(s.cfg.PhotoCleanupCron, func() {
		slog.Info("Starting Photo Cleanup Job")
		ctx := context.Background()
		if err := job.RunPhotoCleanup(ctx, s.client, s.storageAdapter, s.cfg); err != nil {
			slog.Error("Photo Cleanup Job failed", "error", err)
		} else {
			slog.Info("Photo Cleanup Job completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Photo Cleanup job", "error", err)
	} else {
		slog.Info("Registered Photo Cleanup Job", "schedule", s.cfg.PhotoCleanupCron)
	}
}
