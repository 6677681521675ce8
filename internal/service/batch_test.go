package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/model"
)

func fixedTask(name string, outcome model.Outcome, warnings ...string) Task {
	return Task{
		Name:  name,
		Delay: time.Second,
		Run: func(context.Context) model.AssetResult {
			res := model.NewAssetResult(name, name+".glb", outcome)
			res.Warnings = warnings
			if outcome == model.OutcomeFailed {
				res.Error = "boom"
			}
			return res
		},
	}
}

func TestRunnerDelaysOnlyAfterRemoteWork(t *testing.T) {
	sleeps := &noSleep{}
	runner := NewRunner(nil, WithRunnerSleep(sleeps.sleep))

	summary := runner.Run(context.Background(), []Task{
		fixedTask("a", model.OutcomeSucceeded),
		fixedTask("b", model.OutcomeExisting),
		fixedTask("c", model.OutcomeFailed),
		fixedTask("d", model.OutcomeSucceeded),
	})

	// after a and c; never after a skipped asset or the last one
	assert.Equal(t, 2, sleeps.count())
	assert.Equal(t, []string{"a", "b", "d"}, summary.Succeeded())
	assert.Equal(t, []string{"c"}, summary.Failed())
	assert.Empty(t, summary.Skipped())
	assert.Equal(t, 1, summary.ExitCode())
}

func TestRunnerCancelledContextFailsRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := NewRunner(nil, WithRunnerSleep((&noSleep{}).sleep))

	first := Task{Name: "a", Run: func(context.Context) model.AssetResult {
		cancel()
		return model.NewAssetResult("a", "", model.OutcomeSucceeded)
	}}
	summary := runner.Run(ctx, []Task{first, fixedTask("b", model.OutcomeSucceeded), fixedTask("c", model.OutcomeSucceeded)})

	require.Len(t, summary.Results, 3)
	assert.Equal(t, []string{"b", "c"}, summary.Failed())
}

func TestSummaryRunLog(t *testing.T) {
	runner := NewRunner(nil, WithRunnerSleep((&noSleep{}).sleep))
	summary := runner.Run(context.Background(), []Task{
		fixedTask("a", model.OutcomeSucceeded, "rigging failed"),
		fixedTask("b", model.OutcomeDryRun),
		fixedTask("c", model.OutcomeMissing),
	})

	log := summary.RunLog("run-1", map[string]any{"skip_refine": true})

	assert.Equal(t, "run-1", log.RunID)
	assert.Equal(t, 3, log.Total)
	assert.Equal(t, []string{"a"}, log.Succeeded)
	assert.Equal(t, []string{}, log.Failed)
	assert.Equal(t, []string{"b", "c"}, log.Skipped)
	assert.Equal(t, map[string][]string{"a": {"rigging failed"}}, log.Warnings)
	_, err := time.Parse(time.RFC3339, log.Timestamp)
	assert.NoError(t, err)
}

func TestWriteRunLog(t *testing.T) {
	store := newTestStore(t)
	summary := &Summary{Results: []model.AssetResult{model.NewAssetResult("a", "", model.OutcomeFailed)}}

	require.NoError(t, WriteRunLog(store, "assets/models/_generation_log.json", summary.RunLog("", nil)))

	data, err := store.Read("assets/models/_generation_log.json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(1), decoded["total"])
	assert.Equal(t, []any{"a"}, decoded["failed"])
	assert.Equal(t, []any{}, decoded["succeeded"])
	assert.NotContains(t, decoded, "warnings")
	assert.NotContains(t, decoded, "run_id")
}
