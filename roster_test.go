package server

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterAddDeduplicatesNames(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	r.Add(NewCharacter("Orc", 10, 10, ""))
	r.Add(NewCharacter("Orc", 5, 5, ""))

	require.Equal(t, []string{"Orc", "Orc1"}, r.Names())

	// Renaming must not touch the rest of the incoming character.
	second := r.GetByName("Orc1")
	require.NotNil(t, second)
	assert.Equal(t, 5, second.HP())
	assert.Equal(t, 5, second.MaxHP())
}

func TestRosterNamesNeverDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	for i := 0; i < 8; i++ {
		r.Add(NewCharacter("Goblin", 4, 4, ""))
	}

	seen := make(map[string]bool)
	for _, name := range r.Names() {
		require.False(t, seen[name], fmt.Sprintf("duplicate name %q", name))
		seen[name] = true
	}
}

func TestRosterOrderIsInsertionOrder(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	r.Add(NewCharacter("Cleric", 8, 8, ""))
	r.Add(NewCharacter("Orc", 10, 10, ""))
	r.Add(NewCharacter("Bat", 2, 2, ""))

	assert.Equal(t, []string{"Cleric", "Orc", "Bat"}, r.Names())
}

func TestRosterGetByName(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	orc := NewCharacter("Orc", 10, 10, "")
	r.Add(orc)

	assert.Same(t, orc, r.GetByName("Orc"))
	assert.Nil(t, r.GetByName("orc"))
	assert.Nil(t, r.GetByName("Troll"))
}

func TestRosterRemove(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	orc := NewCharacter("Orc", 10, 10, "")
	bat := NewCharacter("Bat", 2, 2, "")
	r.Add(orc)
	r.Add(bat)

	r.Remove(orc)
	assert.Equal(t, []string{"Bat"}, r.Names())

	// Removing an unknown reference is ignored.
	r.Remove(NewCharacter("Ghost", 1, 1, ""))
	assert.Equal(t, 1, r.Len())

	r.RemoveByName("Nonexistent")
	assert.Equal(t, []string{"Bat"}, r.Names())

	r.RemoveByName("Bat")
	assert.Empty(t, r.Names())
}
