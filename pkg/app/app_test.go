package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/embedded"
	"github.com/decker502/memoris/pkg/scenes"
)

func silentOptions(scene string) config.LaunchOptions {
	opts := config.DefaultLaunchOptions()
	opts.Scene = scene
	opts.Sound = false
	opts.SnowBackground = false
	opts.Seed = 42
	return opts
}

func TestNewApp_StartsRequestedScene(t *testing.T) {
	for _, scene := range []string{scenes.SceneMatch, scenes.SceneSnow} {
		t.Run(scene, func(t *testing.T) {
			a, err := NewApp(silentOptions(scene), nil)
			require.NoError(t, err)
			assert.Equal(t, scene, a.GetSceneManager().CurrentName())
			assert.NotNil(t, a.GetSceneManager().GetCurrentScene())
		})
	}
}

func TestNewApp_UnknownScene(t *testing.T) {
	_, err := NewApp(silentOptions("lobby"), nil)
	assert.Error(t, err)
}

func TestNewApp_SceneSwitchKeepsMatchState(t *testing.T) {
	a, err := NewApp(silentOptions(scenes.SceneMatch), nil)
	require.NoError(t, err)

	ms := a.GetSceneManager().GetCurrentScene().(*scenes.MatchScene)
	require.True(t, ms.Engine().Flip(0))

	require.True(t, a.GetSceneManager().Next())
	assert.Equal(t, scenes.SceneSnow, a.GetSceneManager().CurrentName())
	require.True(t, a.GetSceneManager().Next())

	back := a.GetSceneManager().GetCurrentScene().(*scenes.MatchScene)
	assert.Same(t, ms, back)
	assert.Equal(t, []int{0}, back.Engine().Flipped())
}

func TestNewApp_Layout(t *testing.T) {
	a, err := NewApp(silentOptions(scenes.SceneSnow), nil)
	require.NoError(t, err)
	w, h := a.Layout(100, 100)
	assert.Equal(t, config.GameWindowWidth, w)
	assert.Equal(t, config.GameWindowHeight, h)
}

func TestLoadGameConfig_Sources(t *testing.T) {
	embedded.Init(nil)
	cfg, err := LoadGameConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGameConfig(), cfg, "未嵌入资源时使用默认值")

	embedded.Init(fstest.MapFS{
		"data/memoris.yaml": {Data: []byte("match:\n  columns: 2\n")},
	})
	defer embedded.Init(nil)
	cfg, err = LoadGameConfig("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Match.Columns)
	assert.Equal(t, "embedded:"+config.DefaultGameConfigPath, configSource(""))

	embedded.Init(fstest.MapFS{
		"data/other.yaml": {Data: []byte("match:\n  columns: 3\n")},
	})
	cfg, err = LoadGameConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGameConfig(), cfg, "嵌入资源中没有配置文件时使用默认值")
	assert.Equal(t, "defaults", configSource(""))

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  revealDelayMs: 250\n"), 0o644))
	cfg, err = LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Match.RevealDelayMs)
	assert.Equal(t, 4, cfg.Match.Columns)
}

func TestLoadGameConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  columns: 0\n"), 0o644))

	_, err := LoadGameConfig(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = NewApp(config.LaunchOptions{Scene: scenes.SceneMatch, GameConfig: path}, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
