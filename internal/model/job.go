package model

// Job is a remote long-running task as observed by polling
type Job struct {
	ID             string            `json:"id"`
	Type           TaskType          `json:"type"`
	Status         JobStatus         `json:"status"`
	RawStatus      string            `json:"rawStatus"`
	Progress       int               `json:"progress"`
	PrecedingTasks int               `json:"precedingTasks,omitempty"`
	ModelURLs      map[string]string `json:"modelUrls,omitempty"`
	ModelURL       string            `json:"modelUrl,omitempty"`
	RiggedGLBURL   string            `json:"riggedGlbUrl,omitempty"`
	Animations     map[string]string `json:"animations,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// UnknownJobError is reported when a failed job carries no message.
const UnknownJobError = "Unknown error"

// Kind is the pipeline step the job performs.
func (j *Job) Kind() JobKind {
	return j.Type.Kind()
}

// ErrorMessage returns the remote failure message or UnknownJobError.
func (j *Job) ErrorMessage() string {
	if j.Error == "" {
		return UnknownJobError
	}
	return j.Error
}
