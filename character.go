package server

import (
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Character is one roster entry. All mutations happen in place under the
// hub's state lock; Character itself does no locking and no validation
// beyond types. Hit points are never clamped: they may go negative and may
// exceed maxHP, clamping is a presentation concern.
type Character struct {
	name       string
	hp         int
	maxHP      int
	image      string
	initiative int
	abilities  *orderedmap.OrderedMap // ability name -> available (bool), insertion order preserved
}

// NewCharacter creates a character with no abilities and initiative zero.
// maxHP is fixed for the character's lifetime.
func NewCharacter(name string, hp, maxHP int, image string) *Character {
	return &Character{
		name:      name,
		hp:        hp,
		maxHP:     maxHP,
		image:     image,
		abilities: orderedmap.New(),
	}
}

func (c *Character) Name() string    { return c.name }
func (c *Character) HP() int         { return c.hp }
func (c *Character) MaxHP() int      { return c.maxHP }
func (c *Character) Image() string   { return c.image }
func (c *Character) Initiative() int { return c.initiative }

// SetVitals overwrites only the fields that are provided; nil leaves the
// current value untouched.
func (c *Character) SetVitals(name *string, hp *int) {
	if name != nil {
		c.name = *name
	}
	if hp != nil {
		c.hp = *hp
	}
}

func (c *Character) SetImage(image string) {
	c.image = image
}

func (c *Character) SetInitiative(value int) {
	c.initiative = value
}

// AddAbility registers a new ability as available. Adding an ability that is
// already present leaves its availability alone.
func (c *Character) AddAbility(name string) {
	if _, ok := c.abilities.Get(name); ok {
		return
	}
	c.abilities.Set(name, true)
}

// RemoveAbility drops the ability; absent names are a no-op.
func (c *Character) RemoveAbility(name string) {
	c.abilities.Delete(name)
}

// ToggleAbility flips the availability flag; absent names are a no-op.
func (c *Character) ToggleAbility(name string) {
	value, ok := c.abilities.Get(name)
	if !ok {
		return
	}
	available, _ := value.(bool)
	c.abilities.Set(name, !available)
}

// Abilities returns ability names in insertion order.
func (c *Character) Abilities() []string {
	return c.abilities.Keys()
}

// AbilityAvailable reports the availability flag for one ability; unknown
// abilities read as unavailable.
func (c *Character) AbilityAvailable(name string) bool {
	value, ok := c.abilities.Get(name)
	if !ok {
		return false
	}
	available, _ := value.(bool)
	return available
}

// View serializes the character for the wire. Ability names and availability
// flags become two comma-joined strings whose entries line up index for
// index; both are derived from the same ordered map in one pass, so they
// cannot desynchronize.
func (c *Character) View() CharacterView {
	names := c.abilities.Keys()
	flags := make([]string, 0, len(names))
	for _, name := range names {
		value, _ := c.abilities.Get(name)
		if available, _ := value.(bool); available {
			flags = append(flags, "1")
		} else {
			flags = append(flags, "0")
		}
	}
	return CharacterView{
		HP:               c.hp,
		MaxHP:            c.maxHP,
		Image:            c.image,
		Initiative:       c.initiative,
		Abilities:        strings.Join(names, ","),
		AbilityAvailable: strings.Join(flags, ","),
	}
}
