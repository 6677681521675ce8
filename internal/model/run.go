package model

import "time"

// Pipeline steps
type Step string

const (
	StepGenerate Step = "generate"
	StepRefine   Step = "refine"
	StepRig      Step = "rig"
	StepDownload Step = "download"
	StepPublish  Step = "publish"
)

// Step outcomes
type StepOutcome string

const (
	StepSucceeded StepOutcome = "succeeded"
	StepFailed    StepOutcome = "failed"
	StepSkipped   StepOutcome = "skipped"
	StepFallback  StepOutcome = "fallback"
)

// Asset outcomes
type Outcome string

const (
	OutcomeQueued    Outcome = "queued"
	OutcomeRunning   Outcome = "running"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeExisting  Outcome = "skipped-existing"
	OutcomeDryRun    Outcome = "skipped-dry-run"
	OutcomeMissing   Outcome = "skipped-missing-input"
	OutcomeFailed    Outcome = "failed"
)

// Skipped reports whether no work was attempted for the asset.
func (o Outcome) Skipped() bool {
	return o == OutcomeExisting || o == OutcomeDryRun || o == OutcomeMissing
}

// StepResult records one attempted step of a pipeline run
type StepResult struct {
	Step    Step        `json:"step"`
	Outcome StepOutcome `json:"outcome"`
	JobID   string      `json:"jobId,omitempty"`
	Message string      `json:"message,omitempty"`
	At      time.Time   `json:"at"`
}

// PipelineRun is the per-asset state of one pipeline execution
type PipelineRun struct {
	RunID    string       `json:"runId"`
	Asset    string       `json:"asset"`
	Output   string       `json:"output"`
	BestURL  string       `json:"bestUrl,omitempty"`
	Outcome  Outcome      `json:"outcome"`
	Steps    []StepResult `json:"steps"`
	Warnings []string     `json:"warnings,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// NewPipelineRun starts a run for one asset.
func NewPipelineRun(runID, asset, output string) *PipelineRun {
	return &PipelineRun{RunID: runID, Asset: asset, Output: output}
}

// Record appends a step result.
func (r *PipelineRun) Record(step Step, outcome StepOutcome, jobID, message string) {
	r.Steps = append(r.Steps, StepResult{
		Step:    step,
		Outcome: outcome,
		JobID:   jobID,
		Message: message,
		At:      time.Now().UTC(),
	})
}

// Warn records a non-fatal problem.
func (r *PipelineRun) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Fail marks the run as failed.
func (r *PipelineRun) Fail(err error) {
	r.Outcome = OutcomeFailed
	r.Error = err.Error()
}

// Result condenses the run into a batch entry.
func (r *PipelineRun) Result() AssetResult {
	return AssetResult{
		Name:     r.Asset,
		Outcome:  r.Outcome,
		Path:     r.Output,
		Error:    r.Error,
		Warnings: r.Warnings,
	}
}

// AssetResult is the outcome of one asset in a batch
type AssetResult struct {
	Name     string
	Outcome  Outcome
	Path     string
	Error    string
	Warnings []string
}

// Failed reports whether the asset ended failed.
func (a AssetResult) Failed() bool { return a.Outcome == OutcomeFailed }

// NewAssetResult builds a result without step history.
func NewAssetResult(name, path string, outcome Outcome) AssetResult {
	return AssetResult{Name: name, Path: path, Outcome: outcome}
}

// RunLog is the JSON summary written after each batch
type RunLog struct {
	RunID     string              `json:"run_id,omitempty"`
	Timestamp string              `json:"timestamp"`
	Total     int                 `json:"total"`
	Succeeded []string            `json:"succeeded"`
	Failed    []string            `json:"failed"`
	Skipped   []string            `json:"skipped"`
	Warnings  map[string][]string `json:"warnings,omitempty"`
	Settings  map[string]any      `json:"settings,omitempty"`
}
