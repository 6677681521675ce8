package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dragonnestlite/assetgen/internal/model"
)

var validate = validator.New()

// modelFile is the on-disk shape of a model catalog
type modelFile struct {
	Models []model.ModelDefinition `yaml:"models"`
}

// LoadModels reads a YAML model catalog, validates it and orders it by
// priority, then name.
func LoadModels(path string) ([]model.ModelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseModels(data)
}

// ParseModels decodes a YAML model catalog.
func ParseModels(data []byte) ([]model.ModelDefinition, error) {
	var file modelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("catalog has no models")
	}
	for i := range file.Models {
		if file.Models[i].Method == "" {
			file.Models[i].Method = model.MethodTextTo3D
		}
	}
	if err := Validate(file.Models); err != nil {
		return nil, err
	}
	SortModels(file.Models)
	return file.Models, nil
}

// Validate checks every entry's struct tags and rejects duplicate names.
func Validate[T Entry](defs []T) error {
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if err := validate.Struct(d); err != nil {
			return fmt.Errorf("invalid catalog entry %d (%s): %w", i, d.AssetName(), err)
		}
		if seen[d.AssetName()] {
			return fmt.Errorf("duplicate catalog entry %q", d.AssetName())
		}
		seen[d.AssetName()] = true
	}
	return nil
}
