package server

// Roster is the ordered collection of characters in the session; insertion
// order is display order. Name uniqueness is enforced at insertion time only,
// there is no rename operation that could reintroduce a collision.
type Roster struct {
	characters []*Character
}

func NewRoster() *Roster {
	return &Roster{}
}

// Add appends the character, renaming it first when its proposed name
// collides with a current member. Only the name is touched; hit points and
// the rest of the incoming character stay as given.
func (r *Roster) Add(character *Character) {
	unique := UniqueName(character.Name(), r.Names())
	if unique != character.Name() {
		character.SetVitals(&unique, nil)
	}
	r.characters = append(r.characters, character)
}

// GetByName returns the first member with the exact name, or nil.
func (r *Roster) GetByName(name string) *Character {
	for _, character := range r.characters {
		if character.Name() == name {
			return character
		}
	}
	return nil
}

// Remove deletes the exact member reference; unknown references are ignored.
func (r *Roster) Remove(character *Character) {
	for i, member := range r.characters {
		if member == character {
			r.characters = append(r.characters[:i], r.characters[i+1:]...)
			return
		}
	}
}

// RemoveByName removes the member with the given name, if any.
func (r *Roster) RemoveByName(name string) {
	if character := r.GetByName(name); character != nil {
		r.Remove(character)
	}
}

// Names returns the current member names in insertion order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.characters))
	for _, character := range r.characters {
		names = append(names, character.Name())
	}
	return names
}

func (r *Roster) Len() int {
	return len(r.characters)
}
