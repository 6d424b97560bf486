// Package world provides the world graph (areas, exits, groups), the item and
// character model, transition requirements, scripted events, and the World
// aggregate that owns them for a session.
package world

import (
	"slices"

	"github.com/cory-johannsen/nightfall/internal/content"
	"github.com/cory-johannsen/nightfall/internal/game/registry"
)

// Area is a location node in the world graph.
//
// Invariant: a character is in characters iff its Area() is this area, and an
// item is in Items iff its Holder() is Items.
type Area struct {
	// ID uniquely identifies the area.
	ID string
	// EnterDescription is narrated when the player enters or looks around.
	EnterDescription string
	// Config is the record the area was built from, kept for deferred lookups.
	Config content.Area
	// RequireLight marks areas that are dark without an active lantern charge.
	RequireLight bool
	// Hidable marks areas where the player may hide.
	Hidable bool
	// Exits are keyed by this area's direction label.
	Exits *registry.Store[*Exit]
	// Items lie on the area's floor.
	Items *Container
	// Groups classify the area.
	Groups []*Group

	name       string
	characters []Character
}

// NewArea creates an area with no exits, items, or characters.
func NewArea(id, name, enterDescription string) *Area {
	return &Area{
		ID:               id,
		name:             name,
		EnterDescription: enterDescription,
		Exits:            registry.New[*Exit](),
		Items:            NewContainer("area:" + id),
	}
}

// Name returns the display name.
func (a *Area) Name() string { return a.name }

// Characters returns a snapshot of the characters present, in arrival order.
func (a *Area) Characters() []Character {
	return slices.Clone(a.characters)
}

// Enemies returns the enemies present, in arrival order.
func (a *Area) Enemies() []*Enemy {
	var out []*Enemy
	for _, c := range a.characters {
		if e, ok := c.(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// HasNPC reports whether any NPC is present.
func (a *Area) HasNPC() bool {
	return slices.ContainsFunc(a.characters, func(c Character) bool {
		_, ok := c.(*NPC)
		return ok
	})
}

// HasEnemy reports whether any enemy is present.
func (a *Area) HasEnemy() bool {
	return slices.ContainsFunc(a.characters, func(c Character) bool {
		_, ok := c.(*Enemy)
		return ok
	})
}

// VisibleExits returns the direction/exit pairs whose requirement is met or not
// hidden, in declaration order.
func (a *Area) VisibleExits() []DirectedExit {
	var out []DirectedExit
	for dir, e := range a.Exits.All() {
		if e.Requirement.Visible() {
			out = append(out, DirectedExit{Direction: dir, Exit: e})
		}
	}
	return out
}

// DirectedExit is an exit as seen from one area.
type DirectedExit struct {
	Direction string
	Exit      *Exit
}

// UseItem offers item to every exit requirement of the area.
//
// Postcondition: Returns the requirements that tracked item, in exit order.
func (a *Area) UseItem(item *Item) []*TransitionRequirement {
	var matched []*TransitionRequirement
	for _, e := range a.Exits.Values() {
		if e.Requirement.Check(item) {
			matched = append(matched, e.Requirement)
		}
	}
	return matched
}

func (a *Area) removeCharacter(c Character) {
	a.characters = slices.DeleteFunc(a.characters, func(o Character) bool { return o == c })
}

// Group is a named set of areas used as an enemy spawn domain and an area
// classification tag.
type Group struct {
	ID               string
	EnterDescription string
	ExitDescription  string
	Areas            *registry.Store[*Area]

	name string
}

// NewGroup creates an empty group.
func NewGroup(id, name, enterDescription, exitDescription string) *Group {
	return &Group{
		ID:               id,
		name:             name,
		EnterDescription: enterDescription,
		ExitDescription:  exitDescription,
		Areas:            registry.New[*Area](),
	}
}

// Name returns the display name.
func (g *Group) Name() string { return g.name }
