package server

import "github.com/iancoleman/orderedmap"

// defaultBackground matches the scene shipped in the backgrounds directory.
const defaultBackground = "village.png"

// SessionState is the authoritative source of truth for one session: the
// roster plus the global scene attributes. It lives for the process lifetime
// and is never persisted. Access is serialized by the hub's state lock.
type SessionState struct {
	roster     *Roster
	background string
	weather    Weather
}

func NewSessionState() *SessionState {
	return &SessionState{
		roster:     NewRoster(),
		background: defaultBackground,
		weather:    WeatherClear,
	}
}

func (s *SessionState) Roster() *Roster {
	return s.roster
}

func (s *SessionState) Background() string {
	return s.background
}

func (s *SessionState) Weather() Weather {
	return s.weather
}

// SetBackground accepts any identifier; a background that does not exist on
// disk only fails visually on the client.
func (s *SessionState) SetBackground(id string) {
	s.background = id
}

func (s *SessionState) SetWeather(mode Weather) {
	s.weather = mode
}

// Snapshot captures the whole session at one instant. The characters mapping
// preserves roster order. The returned message holds only copied values, so
// it stays valid after the state lock is released.
func (s *SessionState) Snapshot() StateMessage {
	characters := orderedmap.New()
	for _, character := range s.roster.characters {
		characters.Set(character.Name(), character.View())
	}
	return StateMessage{
		Characters: characters,
		Background: s.background,
		Weather:    string(s.weather),
	}
}
