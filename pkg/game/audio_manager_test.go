package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/sound"
)

func TestAudioManager_SilentWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, config.DefaultGameConfig().Audio, true)

	assert.NotPanics(t, func() {
		for _, e := range sound.Effects {
			am.Play(e)
		}
	})
	assert.Empty(t, am.players)
}

func TestAudioManager_PreloadRendersAllEffects(t *testing.T) {
	am := NewAudioManager(nil, config.DefaultGameConfig().Audio, true)
	am.Preload()

	assert.Len(t, am.pcm, len(sound.Effects))
	for _, e := range sound.Effects {
		assert.NotEmpty(t, am.pcm[e], e.String())
	}
}

func TestAudioManager_UnknownEffect(t *testing.T) {
	am := NewAudioManager(nil, config.DefaultGameConfig().Audio, true)
	assert.Nil(t, am.samples(sound.Effect(99)))
	assert.NotContains(t, am.pcm, sound.Effect(99))
}

func TestAudioManager_Settings(t *testing.T) {
	am := NewAudioManager(nil, config.AudioConfig{SampleRate: 22050, Volume: 0.5}, false)
	assert.False(t, am.Enabled())
	assert.Equal(t, 0.5, am.Volume())

	am.SetEnabled(true)
	am.SetVolume(0.2)
	assert.True(t, am.Enabled())
	assert.Equal(t, 0.2, am.Volume())
}

func TestAudioManager_ImplementsPlayer(t *testing.T) {
	var _ sound.Player = (*AudioManager)(nil)
}
