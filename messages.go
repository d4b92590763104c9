package server

import "github.com/iancoleman/orderedmap"

// CharacterView is the wire form of one character. Abilities and
// AbilityAvailable are parallel comma-joined lists: the flag at position i
// belongs to the ability name at position i.
type CharacterView struct {
	HP               int    `json:"hp" jsonschema:"description=Current hit points; unclamped"`
	MaxHP            int    `json:"maxHp" jsonschema:"description=Hit point maximum fixed at creation"`
	Image            string `json:"image" jsonschema:"description=URL path of the character portrait; empty when unset"`
	Initiative       int    `json:"initiative"`
	Abilities        string `json:"abilities" jsonschema:"description=Comma-joined ability names in insertion order"`
	AbilityAvailable string `json:"abilityAvailable" jsonschema:"description=Comma-joined 1/0 flags matching abilities by position"`
}

// StateMessage is the full snapshot pushed to every subscriber after each
// accepted mutation. Characters maps name to CharacterView in roster order.
type StateMessage struct {
	Characters *orderedmap.OrderedMap `json:"characters"`
	Background string                 `json:"background"`
	Weather    string                 `json:"weather"`
}

// HelloMessage is the connect-time payload: the catch-up snapshot plus the
// option lists the UI needs exactly once. Later broadcasts are plain
// StateMessages without the option keys.
type HelloMessage struct {
	StateMessage
	WeatherOptions    []string `json:"weatherOptions"`
	BackgroundOptions []string `json:"backgroundOptions"`
}
