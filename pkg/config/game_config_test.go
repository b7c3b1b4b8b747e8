package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledGameConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultGameConfigPath))
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg, "data/memoris.yaml 应与 DefaultGameConfig 一致")
}

func TestDefaultGameConfig_IsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Match.Faces, 8)
	assert.Equal(t, time.Second, cfg.Match.RevealDelay())
	assert.Equal(t, 16*time.Millisecond, cfg.Snowfall.FrameInterval())
	assert.Equal(t, 600, cfg.Snowfall.Count)
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantErr  bool
		validate func(*testing.T, *GameConfig)
	}{
		{
			name: "partial file keeps defaults",
			yaml: `
snowfall:
  count: 120
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, 120, cfg.Snowfall.Count)
				assert.Equal(t, 1.5, cfg.Snowfall.ParabolaFactor)
				assert.Len(t, cfg.Match.Faces, 8)
			},
		},
		{
			name: "faces list replaces defaults",
			yaml: `
match:
  faces:
    - { id: a, color: "#ff0000" }
    - { id: b, color: "#00ff00" }
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, []string{"a", "b"}, cfg.Match.FaceIDs())
			},
		},
		{
			name: "duplicate face ids",
			yaml: `
match:
  faces:
    - { id: a, color: "#ff0000" }
    - { id: a, color: "#00ff00" }
`,
			wantErr: true,
		},
		{
			name: "single face",
			yaml: `
match:
  faces:
    - { id: a, color: "#ff0000" }
`,
			wantErr: true,
		},
		{
			name: "bad face color",
			yaml: `
match:
  faces:
    - { id: a, color: "red" }
    - { id: b, color: "#00ff00" }
`,
			wantErr: true,
		},
		{
			name: "inverted radius range",
			yaml: `
snowfall:
  radius: { min: 6, max: 2 }
`,
			wantErr: true,
		},
		{
			name: "inverted shade range",
			yaml: `
snowfall:
  shade: { min: 250, max: 200 }
`,
			wantErr: true,
		},
		{
			name: "slowdown above one",
			yaml: `
snowfall:
  maxSlowdown: 1.5
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "match: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestParseGameConfig_ValidationWrapsSentinel(t *testing.T) {
	_, err := ParseGameConfig([]byte("match:\n  columns: 0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#f0f0ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 240, G: 240, B: 255, A: 255}, c)

	_, err = ParseColor("nope")
	assert.Error(t, err)

	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 255, A: 255}, MustColor("nope"))
}
