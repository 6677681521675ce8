package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/model"
)

const sampleCatalog = `
models:
  - name: crate
    filename: crate.glb
    category: items
    target_polycount: 500
    prompt: wooden crate
    priority: 2
  - name: hero
    filename: hero.glb
    category: characters
    method: image-to-3d
    image_path: assets/reference/hero.png
    target_polycount: 5000
    prompt: hero
    needs_rigging: true
    height_meters: 1.2
    priority: 0
`

func TestLoadModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	defs, err := LoadModels(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "hero", defs[0].Name)
	assert.Equal(t, model.MethodImageTo3D, defs[0].Method)
	assert.Equal(t, 1.2, defs[0].HeightMeters)
	assert.Equal(t, "crate", defs[1].Name)
	assert.Equal(t, model.MethodTextTo3D, defs[1].Method)
}

func TestParseModelsRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing image path": `
models:
  - name: hero
    filename: hero.glb
    category: characters
    method: image-to-3d
    target_polycount: 5000
    prompt: hero
`,
		"bad category": `
models:
  - name: hero
    filename: hero.glb
    category: heroes
    target_polycount: 5000
    prompt: hero
`,
		"bad extension": `
models:
  - name: hero
    filename: hero.obj
    category: characters
    target_polycount: 5000
    prompt: hero
`,
		"duplicate": `
models:
  - {name: a, filename: a.glb, category: items, target_polycount: 1, prompt: a}
  - {name: a, filename: b.glb, category: items, target_polycount: 1, prompt: b}
`,
		"empty": `models: []`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseModels([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadModelsMissingFile(t *testing.T) {
	_, err := LoadModels(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
