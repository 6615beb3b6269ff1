package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ricotama/LAPORin/internal/adapter"
	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/model"
)

// DraftRepository keeps the transient form drafts in Redis. Every draft is a
// JSON value under a TTL; an abandoned form simply expires.
type DraftRepository struct {
	redisAdapter *adapter.RedisAdapter
	ttl          time.Duration
}

func NewDraftRepository(redisAdapter *adapter.RedisAdapter, cfg *config.AppConfig) *DraftRepository {
	return &DraftRepository{
		redisAdapter: redisAdapter,
		ttl:          time.Duration(cfg.DraftTTLMinutes) * time.Minute,
	}
}

func draftKey(id string) string {
	return fmt.Sprintf("draft:%s", id)
}

func draftSubmitKey(id string) string {
	return fmt.Sprintf("draft:submit:%s", id)
}

func (r *DraftRepository) Save(ctx context.Context, draft *model.DraftDTO) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.redisAdapter.Set(ctx, draftKey(draft.ID), data, r.ttl)
}

// Get returns (nil, nil) for an unknown or expired draft.
func (r *DraftRepository) Get(ctx context.Context, id string) (*model.DraftDTO, error) {
	raw, err := r.redisAdapter.Get(ctx, draftKey(id))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft model.DraftDTO
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	return r.redisAdapter.Del(ctx, draftKey(id))
}

// BeginSubmit takes the per-draft submit lock. It reports false when a
// submit for the same draft is already in flight. The lock carries its own
// TTL so a crashed submitter cannot wedge the draft.
func (r *DraftRepository) BeginSubmit(ctx context.Context, id string) (bool, error) {
	return r.redisAdapter.SetNX(ctx, draftSubmitKey(id), "1", 30*time.Second)
}

func (r *DraftRepository) EndSubmit(ctx context.Context, id string) error {
	return r.redisAdapter.Del(ctx, draftSubmitKey(id))
}
