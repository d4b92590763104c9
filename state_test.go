package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateDefaults(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	assert.Equal(t, "village.png", s.Background())
	assert.Equal(t, WeatherClear, s.Weather())
	assert.Zero(t, s.Roster().Len())
}

func TestSessionStateSceneAttributes(t *testing.T) {
	t.Parallel()

	s := NewSessionState()

	// No validation against files on disk: any identifier is accepted.
	s.SetBackground("does-not-exist.png")
	assert.Equal(t, "does-not-exist.png", s.Background())

	s.SetWeather(WeatherFog)
	assert.Equal(t, WeatherFog, s.Weather())
}

func TestParseWeather(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"clear", "rain", "fog"} {
		mode, err := ParseWeather(raw)
		require.NoError(t, err)
		assert.Equal(t, Weather(raw), mode)
	}

	for _, raw := range []string{"storm", "Rain", "", "clear "} {
		_, err := ParseWeather(raw)
		assert.ErrorIs(t, err, ErrUnknownWeather, raw)
	}
}

func TestSnapshotPreservesRosterOrder(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	s.Roster().Add(NewCharacter("Cleric", 8, 8, ""))
	s.Roster().Add(NewCharacter("Orc", 10, 10, ""))
	s.Roster().Add(NewCharacter("Bat", 2, 2, ""))

	snap := s.Snapshot()
	assert.Equal(t, []string{"Cleric", "Orc", "Bat"}, snap.Characters.Keys())
	assert.Equal(t, "village.png", snap.Background)
	assert.Equal(t, "clear", snap.Weather)
}

func TestSnapshotIsDetachedFromState(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	s.Roster().Add(NewCharacter("Orc", 10, 10, ""))
	snap := s.Snapshot()

	hp := -5
	s.Roster().GetByName("Orc").SetVitals(nil, &hp)
	s.SetBackground("cave.png")

	value, ok := snap.Characters.Get("Orc")
	require.True(t, ok)
	view, ok := value.(CharacterView)
	require.True(t, ok)
	assert.Equal(t, 10, view.HP)
	assert.Equal(t, "village.png", snap.Background)
}

func TestSnapshotJSONShape(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	orc := NewCharacter("Orc", 10, 12, "/static/orc.png")
	orc.AddAbility("smash")
	orc.AddAbility("roar")
	orc.ToggleAbility("roar")
	orc.SetInitiative(3)
	s.Roster().Add(orc)

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded struct {
		Characters map[string]CharacterView `json:"characters"`
		Background string                   `json:"background"`
		Weather    string                   `json:"weather"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Contains(t, decoded.Characters, "Orc")
	view := decoded.Characters["Orc"]
	assert.Equal(t, 10, view.HP)
	assert.Equal(t, 12, view.MaxHP)
	assert.Equal(t, "/static/orc.png", view.Image)
	assert.Equal(t, 3, view.Initiative)
	assert.Equal(t, "smash,roar", view.Abilities)
	assert.Equal(t, "1,0", view.AbilityAvailable)
	assert.Equal(t, "village.png", decoded.Background)
	assert.Equal(t, "clear", decoded.Weather)
}
