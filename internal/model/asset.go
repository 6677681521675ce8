package model

// ModelDefinition describes one 3D model produced by the Meshy pipeline
type ModelDefinition struct {
	Name            string           `json:"name" yaml:"name" validate:"required"`
	Filename        string           `json:"filename" yaml:"filename" validate:"required,endswith=.glb"`
	Category        ModelCategory    `json:"category" yaml:"category" validate:"required,oneof=characters enemies npcs environment items"`
	Method          GenerationMethod `json:"method" yaml:"method" validate:"required,oneof=image-to-3d text-to-3d"`
	TargetPolycount int              `json:"targetPolycount" yaml:"target_polycount" validate:"gt=0"`
	Prompt          string           `json:"prompt" yaml:"prompt" validate:"required"`
	NeedsRigging    bool             `json:"needsRigging" yaml:"needs_rigging"`
	HeightMeters    float64          `json:"heightMeters,omitempty" yaml:"height_meters,omitempty" validate:"gte=0"`
	ImagePath       string           `json:"imagePath,omitempty" yaml:"image_path,omitempty" validate:"required_if=Method image-to-3d"`
	Animations      []string         `json:"animations,omitempty" yaml:"animations,omitempty"`
	Priority        int              `json:"priority" yaml:"priority" validate:"gte=0"`
}

// NeedsRefinement reports whether a refine pass follows the preview.
func (d ModelDefinition) NeedsRefinement() bool {
	return d.Method == MethodTextTo3D
}

func (d ModelDefinition) AssetName() string     { return d.Name }
func (d ModelDefinition) AssetCategory() string { return string(d.Category) }

// ImageDefinition describes one 2D image produced by the image generator
type ImageDefinition struct {
	Name      string        `json:"name" yaml:"name" validate:"required"`
	Filename  string        `json:"filename" yaml:"filename" validate:"required"`
	Category  ImageCategory `json:"category" yaml:"category" validate:"required"`
	Dir       string        `json:"dir" yaml:"dir" validate:"required"` // relative to the assets directory
	Prompt    string        `json:"prompt" yaml:"prompt" validate:"required"`
	Reference string        `json:"reference,omitempty" yaml:"reference,omitempty"` // file under assets/reference
}

func (d ImageDefinition) AssetName() string     { return d.Name }
func (d ImageDefinition) AssetCategory() string { return string(d.Category) }

// SoundDefinition describes one sound effect or music track
type SoundDefinition struct {
	Name            string        `json:"name" yaml:"name" validate:"required"`
	Category        SoundCategory `json:"category" yaml:"category" validate:"required"`
	Text            string        `json:"text" yaml:"text" validate:"required"`
	DurationSeconds float64       `json:"durationSeconds" yaml:"duration_seconds" validate:"gt=0,lte=22"`
	PromptInfluence float64       `json:"promptInfluence" yaml:"prompt_influence" validate:"gte=0,lte=1"`
}

// Filename is the output file name of the sound.
func (d SoundDefinition) Filename() string { return d.Name + ".mp3" }

func (d SoundDefinition) AssetName() string     { return d.Name }
func (d SoundDefinition) AssetCategory() string { return string(d.Category) }

// VoiceSettings are the text-to-speech tuning parameters
type VoiceSettings struct {
	Stability       float64 `json:"stability" yaml:"stability"`
	SimilarityBoost float64 `json:"similarity_boost" yaml:"similarity_boost"`
	Style           float64 `json:"style,omitempty" yaml:"style,omitempty"`
}

// VoiceLine describes one spoken line
type VoiceLine struct {
	Name      string        `json:"name" yaml:"name" validate:"required"`
	Category  VoiceCategory `json:"category" yaml:"category" validate:"required"`
	Text      string        `json:"text" yaml:"text" validate:"required"`
	VoiceType string        `json:"voiceType" yaml:"voice_type" validate:"required"`
	ModelID   string        `json:"modelId" yaml:"model_id"`
	Settings  VoiceSettings `json:"settings" yaml:"settings"`
}

// Filename is the output file name of the voice line.
func (l VoiceLine) Filename() string { return l.Name + ".mp3" }

func (l VoiceLine) AssetName() string     { return l.Name }
func (l VoiceLine) AssetCategory() string { return string(l.Category) }
