package server

// Mutation operations. Each applies exactly one change to the session state
// and emits exactly one full-snapshot broadcast, even when the change turned
// out to be a no-op; controllers observe the effect through the broadcast,
// not through the acknowledgement. Operations that target a character by
// name degrade silently when the name matches nothing.

// AddCharacter inserts a new roster member, renaming it when the proposed
// name is already taken.
func (h *Hub) AddCharacter(name string, hp, maxHP int, image string) {
	h.mu.Lock()
	h.state.Roster().Add(NewCharacter(name, hp, maxHP, image))
	h.broadcastLocked()
}

// RemoveCharacter drops the named roster member, if present.
func (h *Hub) RemoveCharacter(name string) {
	h.mu.Lock()
	h.state.Roster().RemoveByName(name)
	h.broadcastLocked()
}

// AdjustHP applies a signed delta to the named character's hit points.
// The result is not clamped in either direction.
func (h *Hub) AdjustHP(name string, delta int) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		hp := character.HP() + delta
		character.SetVitals(nil, &hp)
	}
	h.broadcastLocked()
}

// SetInitiative overwrites the named character's initiative.
func (h *Hub) SetInitiative(name string, value int) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		character.SetInitiative(value)
	}
	h.broadcastLocked()
}

// AddAbility grants the named character a new ability, available by default.
func (h *Hub) AddAbility(name, ability string) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		character.AddAbility(ability)
	}
	h.broadcastLocked()
}

// RemoveAbility takes an ability away from the named character.
func (h *Hub) RemoveAbility(name, ability string) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		character.RemoveAbility(ability)
	}
	h.broadcastLocked()
}

// ToggleAbility flips an ability between available and unavailable.
func (h *Hub) ToggleAbility(name, ability string) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		character.ToggleAbility(ability)
	}
	h.broadcastLocked()
}

// SetBackground switches the scene background. The identifier is not checked
// against the files on disk.
func (h *Hub) SetBackground(id string) {
	h.mu.Lock()
	h.state.SetBackground(id)
	h.broadcastLocked()
}

// SetWeather switches the weather overlay. An unknown mode is rejected
// before any state is touched: no mutation, no broadcast.
func (h *Hub) SetWeather(raw string) error {
	mode, err := ParseWeather(raw)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.state.SetWeather(mode)
	h.broadcastLocked()
	return nil
}

// AssignImage points the named character at a freshly stored image. Image
// updates go through the same full-snapshot broadcast as every other
// mutation, so viewers never see a partial update.
func (h *Hub) AssignImage(name, image string) {
	h.mu.Lock()
	if character := h.state.Roster().GetByName(name); character != nil {
		character.SetImage(image)
	}
	h.broadcastLocked()
}
