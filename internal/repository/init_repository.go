package repository

import (
	"github.com/ricotama/LAPORin/ent"
	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
)

type Repository struct {
	Report    *ReportRepository
	Draft     *DraftRepository
	RateLimit *RateLimitRepository
}

func NewRepository(client *ent.Client, redisAdapter *adapter.RedisAdapter, cfg *config.AppConfig) *Repository {
	return &Repository{
		Report:    NewReportRepository(client),
		Draft:     NewDraftRepository(redisAdapter, cfg),
		RateLimit: NewRateLimitRepository(redisAdapter),
	}
}
