// Package catalog holds the built-in asset tables and the filters that
// select from them.
package catalog

import (
	"sort"

	"github.com/dragonnestlite/assetgen/internal/model"
)

// Entry is anything the catalog can filter by name and category
type Entry interface {
	AssetName() string
	AssetCategory() string
}

// Models returns the built-in model table ordered by priority, then name.
func Models() []model.ModelDefinition {
	defs := append([]model.ModelDefinition(nil), builtinModels...)
	SortModels(defs)
	return defs
}

// RigTargets returns the models that can be rigged on their own: those
// with a known character height.
func RigTargets() []model.ModelDefinition {
	var out []model.ModelDefinition
	for _, d := range builtinModels {
		if d.NeedsRigging && d.HeightMeters > 0 {
			out = append(out, d)
		}
	}
	return out
}

// Images returns the built-in image table in declaration order.
func Images() []model.ImageDefinition {
	return append([]model.ImageDefinition(nil), builtinImages...)
}

// Sounds returns the built-in sound effect and music table.
func Sounds() []model.SoundDefinition {
	return append([]model.SoundDefinition(nil), builtinSounds...)
}

// Voices returns the built-in voice lines.
func Voices() []model.VoiceLine {
	return append([]model.VoiceLine(nil), builtinVoices...)
}

// SortModels orders defs by priority, then name.
func SortModels(defs []model.ModelDefinition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Priority != defs[j].Priority {
			return defs[i].Priority < defs[j].Priority
		}
		return defs[i].Name < defs[j].Name
	})
}

// Find returns the definition called name.
func Find[T Entry](defs []T, name string) (T, bool) {
	for _, d := range defs {
		if d.AssetName() == name {
			return d, true
		}
	}
	var zero T
	return zero, false
}

// Names converts a typed category list to strings.
func Names[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
