package model

import "strings"

// Model categories
type ModelCategory string

const (
	CategoryCharacters  ModelCategory = "characters"
	CategoryEnemies     ModelCategory = "enemies"
	CategoryNPCs        ModelCategory = "npcs"
	CategoryEnvironment ModelCategory = "environment"
	CategoryItems       ModelCategory = "items"
)

var ValidModelCategories = []ModelCategory{
	CategoryCharacters, CategoryEnemies, CategoryNPCs,
	CategoryEnvironment, CategoryItems,
}

// Generation methods
type GenerationMethod string

const (
	MethodImageTo3D GenerationMethod = "image-to-3d"
	MethodTextTo3D  GenerationMethod = "text-to-3d"
)

// TaskType identifies the remote endpoint family a job lives under.
type TaskType string

const (
	TaskImageTo3D TaskType = "image-to-3d"
	TaskTextTo3D  TaskType = "text-to-3d"
	TaskRefine    TaskType = "refine"
	TaskRigging   TaskType = "rigging"
)

// Kind maps a task type to the pipeline step it performs.
func (t TaskType) Kind() JobKind {
	switch t {
	case TaskRefine:
		return JobKindRefinement
	case TaskRigging:
		return JobKindRigging
	default:
		return JobKindGeneration
	}
}

// Label is the human readable name used in logs and errors.
func (t TaskType) Label() string {
	switch t {
	case TaskImageTo3D:
		return "Image-to-3D"
	case TaskTextTo3D:
		return "Text-to-3D preview"
	case TaskRefine:
		return "Text-to-3D refine"
	case TaskRigging:
		return "Rigging"
	default:
		return string(t)
	}
}

// Job kinds
type JobKind string

const (
	JobKindGeneration JobKind = "generation"
	JobKindRefinement JobKind = "refinement"
	JobKindRigging    JobKind = "rigging"
)

// Job status
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusExpired   JobStatus = "expired"
	JobStatusCanceled  JobStatus = "canceled"
	JobStatusUnknown   JobStatus = "unknown"
)

// ParseJobStatus maps a remote status string onto a JobStatus.
// Unrecognized values map to JobStatusUnknown and are treated as still running.
func ParseJobStatus(raw string) JobStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING", "QUEUED":
		return JobStatusQueued
	case "IN_PROGRESS", "RUNNING":
		return JobStatusRunning
	case "SUCCEEDED":
		return JobStatusSucceeded
	case "FAILED":
		return JobStatusFailed
	case "EXPIRED":
		return JobStatusExpired
	case "CANCELED", "CANCELLED":
		return JobStatusCanceled
	default:
		return JobStatusUnknown
	}
}

// IsTerminal reports whether polling should stop.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusSucceeded, JobStatusFailed, JobStatusExpired, JobStatusCanceled:
		return true
	}
	return false
}

// IsFailure reports whether the status is a terminal failure.
func (s JobStatus) IsFailure() bool {
	return s == JobStatusFailed || s == JobStatusExpired || s == JobStatusCanceled
}

// Image categories
type ImageCategory string

const (
	ImageCategoryCharacters  ImageCategory = "characters"
	ImageCategoryEnemies     ImageCategory = "enemies"
	ImageCategoryIcons       ImageCategory = "icons"
	ImageCategoryUI          ImageCategory = "ui"
	ImageCategoryBackgrounds ImageCategory = "backgrounds"
	ImageCategoryEffects     ImageCategory = "effects"
)

var ValidImageCategories = []ImageCategory{
	ImageCategoryCharacters, ImageCategoryEnemies, ImageCategoryIcons,
	ImageCategoryUI, ImageCategoryBackgrounds, ImageCategoryEffects,
}

// Sound categories
type SoundCategory string

const (
	SoundCategoryCombat      SoundCategory = "combat"
	SoundCategorySkill       SoundCategory = "skill"
	SoundCategoryPlayer      SoundCategory = "player"
	SoundCategoryEnemy       SoundCategory = "enemy"
	SoundCategoryUI          SoundCategory = "ui"
	SoundCategoryEnvironment SoundCategory = "environment"
	SoundCategoryAmbient     SoundCategory = "ambient"
	SoundCategoryBGM         SoundCategory = "bgm"
)

var ValidSoundCategories = []SoundCategory{
	SoundCategoryCombat, SoundCategorySkill, SoundCategoryPlayer, SoundCategoryEnemy,
	SoundCategoryUI, SoundCategoryEnvironment, SoundCategoryAmbient, SoundCategoryBGM,
}

// Voice categories
type VoiceCategory string

const (
	VoiceCategoryNPC       VoiceCategory = "npc"
	VoiceCategoryNarration VoiceCategory = "narration"
	VoiceCategoryFighter   VoiceCategory = "fighter"
	VoiceCategoryMage      VoiceCategory = "mage"
	VoiceCategoryMonster   VoiceCategory = "monster"
)

var ValidVoiceCategories = []VoiceCategory{
	VoiceCategoryNPC, VoiceCategoryNarration, VoiceCategoryFighter,
	VoiceCategoryMage, VoiceCategoryMonster,
}
