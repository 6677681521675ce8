package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/model"
)

func newTestProgress(t *testing.T) (*ProgressStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewProgressStore(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestProgressStoreSaveAndList(t *testing.T) {
	ps, mr := newTestProgress(t)
	ctx := context.Background()

	goblin := model.NewPipelineRun("run-1", "enemy_goblin", "assets/models/enemy_goblin.glb")
	goblin.Record(model.StepGenerate, model.StepSucceeded, "gen-1", "")
	goblin.Outcome = model.OutcomeSucceeded
	dragon := model.NewPipelineRun("run-1", "boss_dragon", "assets/models/boss_dragon.glb")
	dragon.Fail(assert.AnError)

	require.NoError(t, ps.Save(ctx, goblin))
	require.NoError(t, ps.Save(ctx, dragon))

	runs, err := ps.List(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "boss_dragon", runs[0].Asset)
	assert.Equal(t, model.OutcomeFailed, runs[0].Outcome)
	assert.Equal(t, "enemy_goblin", runs[1].Asset)
	require.Len(t, runs[1].Steps, 1)
	assert.Equal(t, "gen-1", runs[1].Steps[0].JobID)

	assert.Equal(t, 24*time.Hour, mr.TTL("run:run-1:enemy_goblin"))
	assert.Equal(t, 24*time.Hour, mr.TTL("run:run-1:assets"))
}

func TestProgressStoreMissingRun(t *testing.T) {
	ps, _ := newTestProgress(t)

	_, err := ps.Get(context.Background(), "nope", "fighter")
	assert.ErrorIs(t, err, ErrRunNotFound)
	_, err = ps.List(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestNilProgressStoreIsNoop(t *testing.T) {
	var ps *ProgressStore
	assert.Nil(t, NewProgressStore(nil))
	assert.NoError(t, ps.Save(context.Background(), model.NewPipelineRun("r", "a", "")))
	_, err := ps.List(context.Background(), "r")
	assert.ErrorIs(t, err, ErrRunNotFound)
}
