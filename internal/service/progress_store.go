package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dragonnestlite/assetgen/internal/model"
)

// ErrRunNotFound is returned when Redis holds no state for a run or asset.
var ErrRunNotFound = errors.New("run not found")

const progressTTL = 24 * time.Hour

// ProgressStore records pipeline runs in Redis so other processes can follow
// them. A nil *ProgressStore ignores every call.
type ProgressStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProgressStore(redisClient *redis.Client) *ProgressStore {
	if redisClient == nil {
		return nil
	}
	return &ProgressStore{
		redis: redisClient,
		ttl:   progressTTL,
	}
}

// Save stores the run under run:<id>:<asset> and adds the asset to the run's
// asset set.
func (s *ProgressStore) Save(ctx context.Context, run *model.PipelineRun) error {
	if s == nil || run == nil || run.RunID == "" {
		return nil
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, assetKey(run.RunID, run.Asset), data, s.ttl)
	pipe.SAdd(ctx, assetsKey(run.RunID), run.Asset)
	pipe.Expire(ctx, assetsKey(run.RunID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// Get returns the stored state of one asset of a run.
func (s *ProgressStore) Get(ctx context.Context, runID, asset string) (*model.PipelineRun, error) {
	if s == nil {
		return nil, ErrRunNotFound
	}

	data, err := s.redis.Get(ctx, assetKey(runID, asset)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	var run model.PipelineRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

// List returns every asset of a run ordered by name.
func (s *ProgressStore) List(ctx context.Context, runID string) ([]*model.PipelineRun, error) {
	if s == nil {
		return nil, ErrRunNotFound
	}

	assets, err := s.redis.SMembers(ctx, assetsKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list run assets: %w", err)
	}
	if len(assets) == 0 {
		return nil, ErrRunNotFound
	}
	sort.Strings(assets)

	runs := make([]*model.PipelineRun, 0, len(assets))
	for _, asset := range assets {
		run, err := s.Get(ctx, runID, asset)
		if errors.Is(err, ErrRunNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func assetKey(runID, asset string) string {
	return fmt.Sprintf("run:%s:%s", runID, asset)
}

func assetsKey(runID string) string {
	return fmt.Sprintf("run:%s:assets", runID)
}
