package net

// Request bodies for the mutation endpoints, one type per operation.
// Pointer fields mark values the client must provide; decoding rejects
// requests that omit them instead of silently defaulting to zero.

type addCharacterRequest struct {
	Name  *string `json:"name"`
	HP    *int    `json:"hp"`
	MaxHP *int    `json:"maxHp"`
	Image string  `json:"image"`
}

type removeCharacterRequest struct {
	Name *string `json:"name"`
}

type adjustHPRequest struct {
	Name  *string `json:"name"`
	Delta *int    `json:"delta"`
}

type setInitiativeRequest struct {
	Name       *string `json:"name"`
	Initiative *int    `json:"initiative"`
}

type abilityRequest struct {
	Name    *string `json:"name"`
	Ability *string `json:"ability"`
}

type setBackgroundRequest struct {
	Background *string `json:"background"`
}

type setWeatherRequest struct {
	Weather *string `json:"weather"`
}
