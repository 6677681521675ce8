package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// ModelGenerator defines the remote 3D generation operations used by the pipeline
type ModelGenerator interface {
	Submit(ctx context.Context, task model.TaskType, body any) (string, error)
	Status(ctx context.Context, task model.TaskType, taskID string) (*model.Job, error)
	Download(ctx context.Context, url, dest string, w ArtifactWriter) (int64, error)
}

// ArtifactWriter persists a downloaded stream at path
type ArtifactWriter interface {
	WriteStream(path string, r io.Reader) (int64, error)
}

// MeshyClient implements ModelGenerator for the Meshy API
type MeshyClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// ImageTo3DRequest represents the request for image-to-3D generation
type ImageTo3DRequest struct {
	ImageURL        string `json:"image_url"`
	AIModel         string `json:"ai_model"`
	Topology        string `json:"topology"`
	TargetPolycount int    `json:"target_polycount"`
	ShouldRemesh    bool   `json:"should_remesh"`
}

// TextTo3DRequest represents the request for a text-to-3D preview
type TextTo3DRequest struct {
	Mode            string `json:"mode"`
	Prompt          string `json:"prompt"`
	NegativePrompt  string `json:"negative_prompt"`
	AIModel         string `json:"ai_model"`
	ArtStyle        string `json:"art_style"`
	Topology        string `json:"topology"`
	TargetPolycount int    `json:"target_polycount"`
	ShouldRemesh    bool   `json:"should_remesh"`
}

// RefineRequest represents the request for refining a text-to-3D preview
type RefineRequest struct {
	Mode            string `json:"mode"`
	PreviewTaskID   string `json:"preview_task_id"`
	TextureRichness string `json:"texture_richness"`
}

// RiggingRequest represents the request for auto-rigging a model
type RiggingRequest struct {
	ModelURL     string  `json:"model_url"`
	HeightMeters float64 `json:"height_meters,omitempty"`
}

// DefaultNegativePrompt steers text-to-3D away from detailed meshes.
const DefaultNegativePrompt = "high poly, complex, noisy, blurry, realistic human proportions"

// NewImageTo3DRequest builds an image-to-3D request with the pipeline defaults.
func NewImageTo3DRequest(imageURL string, polycount int) *ImageTo3DRequest {
	return &ImageTo3DRequest{
		ImageURL:        imageURL,
		AIModel:         "latest",
		Topology:        "quad",
		TargetPolycount: polycount,
		ShouldRemesh:    true,
	}
}

// NewTextTo3DRequest builds a preview request with the pipeline defaults.
func NewTextTo3DRequest(prompt string, polycount int) *TextTo3DRequest {
	return &TextTo3DRequest{
		Mode:            "preview",
		Prompt:          prompt,
		NegativePrompt:  DefaultNegativePrompt,
		AIModel:         "latest",
		ArtStyle:        "realistic",
		Topology:        "quad",
		TargetPolycount: polycount,
		ShouldRemesh:    true,
	}
}

// NewRefineRequest builds a refine request for a finished preview.
func NewRefineRequest(previewTaskID string) *RefineRequest {
	return &RefineRequest{
		Mode:            "refine",
		PreviewTaskID:   previewTaskID,
		TextureRichness: "high",
	}
}

// meshyTask is the status payload shared by every Meshy task endpoint
type meshyTask struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	Progress       float64         `json:"progress"`
	PrecedingTasks float64         `json:"preceding_tasks"`
	ModelURLs      map[string]any  `json:"model_urls"`
	ModelURL       string          `json:"model_url"`
	TaskError      *meshyTaskError `json:"task_error"`
	Result         json.RawMessage `json:"result"`
}

type meshyTaskError struct {
	Message string `json:"message"`
}

// meshyRigResult is the result object of a finished rigging task
type meshyRigResult struct {
	RiggedCharacterGLBURL string         `json:"rigged_character_glb_url"`
	BasicAnimations       map[string]any `json:"basic_animations"`
}

// NewMeshyClient creates a new Meshy API client
func NewMeshyClient(cfg *config.MeshyConfig, logger *zap.Logger) *MeshyClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &MeshyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logging.OrNop(logger),
	}
}

// Submit creates a remote job and returns its id
func (c *MeshyClient) Submit(ctx context.Context, task model.TaskType, body any) (string, error) {
	endpoint, err := taskEndpoint(task)
	if err != nil {
		return "", err
	}
	op := submitOp(task)

	var result struct {
		Result string `json:"result"`
	}
	if err := c.post(ctx, op, endpoint, body, &result); err != nil {
		return "", err
	}
	if result.Result == "" {
		return "", &APIError{Op: fmt.Sprintf("no task ID in %s response", task.Label())}
	}
	return result.Result, nil
}

// CreateImageTo3D submits an image-to-3D job
func (c *MeshyClient) CreateImageTo3D(ctx context.Context, imageURL string, polycount int) (string, error) {
	return c.Submit(ctx, model.TaskImageTo3D, NewImageTo3DRequest(imageURL, polycount))
}

// CreateTextTo3D submits a text-to-3D preview job
func (c *MeshyClient) CreateTextTo3D(ctx context.Context, prompt string, polycount int) (string, error) {
	return c.Submit(ctx, model.TaskTextTo3D, NewTextTo3DRequest(prompt, polycount))
}

// RefineTextTo3D submits a refine job for a finished preview
func (c *MeshyClient) RefineTextTo3D(ctx context.Context, previewTaskID string) (string, error) {
	return c.Submit(ctx, model.TaskRefine, NewRefineRequest(previewTaskID))
}

// CreateRigging submits an auto-rigging job
func (c *MeshyClient) CreateRigging(ctx context.Context, modelURL string, heightMeters float64) (string, error) {
	return c.Submit(ctx, model.TaskRigging, &RiggingRequest{ModelURL: modelURL, HeightMeters: heightMeters})
}

// Status retrieves the current state of a job
func (c *MeshyClient) Status(ctx context.Context, task model.TaskType, taskID string) (*model.Job, error) {
	endpoint, err := taskEndpoint(task)
	if err != nil {
		return nil, err
	}
	op := fmt.Sprintf("%s status check (%s)", task.Label(), taskID)

	var raw meshyTask
	if err := c.get(ctx, op, endpoint+"/"+taskID, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		raw.ID = taskID
	}
	return raw.toJob(task), nil
}

// StatusFunc binds Status to a task type for use with a Poller
func (c *MeshyClient) StatusFunc(task model.TaskType) StatusFunc {
	return func(ctx context.Context, taskID string) (*model.Job, error) {
		return c.Status(ctx, task, taskID)
	}
}

// Download streams url into dest through w. Only requests to the Meshy API
// host carry the bearer credential.
func (c *MeshyClient) Download(ctx context.Context, url, dest string, w ArtifactWriter) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if strings.HasPrefix(url, c.baseURL) {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("download", zap.String("url", url), zap.String("dest", dest))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, &APIError{Op: "download", StatusCode: resp.StatusCode, Body: string(body)}
	}

	n, err := w.WriteStream(dest, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to save download: %w", err)
	}
	return n, nil
}

// IsConfigured returns true if the client has valid configuration
func (c *MeshyClient) IsConfigured() bool {
	return c.apiKey != ""
}

// post sends a POST request with JSON body
func (c *MeshyClient) post(ctx context.Context, op, endpoint string, body any, result any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRequest(op, req, result)
}

// get sends a GET request and parses JSON response
func (c *MeshyClient) get(ctx context.Context, op, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRequest(op, req, result)
}

// doRequest executes an HTTP request and parses the response
func (c *MeshyClient) doRequest(op string, req *http.Request, result any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("meshy request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("meshy response",
		zap.Int("status", resp.StatusCode),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func taskEndpoint(task model.TaskType) (string, error) {
	switch task {
	case model.TaskImageTo3D:
		return "/v1/image-to-3d", nil
	case model.TaskTextTo3D, model.TaskRefine:
		return "/v2/text-to-3d", nil
	case model.TaskRigging:
		return "/v1/rigging", nil
	default:
		return "", fmt.Errorf("unknown task type %q", task)
	}
}

func submitOp(task model.TaskType) string {
	switch task {
	case model.TaskRefine:
		return "Text-to-3D refine"
	case model.TaskTextTo3D:
		return "Text-to-3D creation"
	default:
		return task.Label() + " creation"
	}
}

func (t *meshyTask) toJob(task model.TaskType) *model.Job {
	job := &model.Job{
		ID:             t.ID,
		Type:           task,
		Status:         model.ParseJobStatus(t.Status),
		RawStatus:      t.Status,
		Progress:       int(math.Round(t.Progress)),
		PrecedingTasks: int(math.Round(t.PrecedingTasks)),
		ModelURLs:      stringValues(t.ModelURLs),
		ModelURL:       t.ModelURL,
	}
	if job.RawStatus == "" {
		job.RawStatus = "UNKNOWN"
	}
	if t.TaskError != nil {
		job.Error = t.TaskError.Message
	}

	// result is an object only for rigging tasks
	if len(t.Result) > 0 && t.Result[0] == '{' {
		var rig meshyRigResult
		if err := json.Unmarshal(t.Result, &rig); err == nil {
			job.RiggedGLBURL = rig.RiggedCharacterGLBURL
			job.Animations = stringValues(rig.BasicAnimations)
		}
	}
	return job
}

// stringValues keeps the non-empty string entries of m.
func stringValues(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok && s != "" {
			out[k] = s
		}
	}
	return out
}
