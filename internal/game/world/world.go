package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cory-johannsen/nightfall/internal/game/registry"
)

// World is the aggregate root of a session. It owns every registry, the live
// character list, and the trigger table. Exactly one World exists per session
// and only the game loop mutates it.
type World struct {
	Areas  *registry.Store[*Area]
	Groups *registry.Store[*Group]
	Items  *registry.Store[*Item]
	// Player is also present in the character list.
	Player *Player
	// Running is cleared to end the session.
	Running bool

	characters []Character
	triggers   map[TriggerKind][]*Event
}

// New returns an empty running World.
func New() *World {
	return &World{
		Areas:    registry.New[*Area](),
		Groups:   registry.New[*Group](),
		Items:    registry.New[*Item](),
		Running:  true,
		triggers: make(map[TriggerKind][]*Event),
	}
}

// AddCharacter registers c and places it in area. A *Player also becomes
// w.Player.
//
// Precondition: c and area must be non-nil.
// Postcondition: c.Area() == area and c appears in Characters().
func (w *World) AddCharacter(c Character, area *Area) {
	if p, ok := c.(*Player); ok {
		w.Player = p
	}
	w.characters = append(w.characters, c)
	Move(c, area)
}

// Characters returns a snapshot of every character in registration order.
func (w *World) Characters() []Character {
	return slices.Clone(w.characters)
}

// Enemies returns every enemy in registration order.
func (w *World) Enemies() []*Enemy {
	var out []*Enemy
	for _, c := range w.characters {
		if e, ok := c.(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// NPCAreaIDs returns the ids of areas currently occupied by an NPC.
func (w *World) NPCAreaIDs() []string {
	var out []string
	for _, c := range w.characters {
		if n, ok := c.(*NPC); ok && n.Area() != nil && !slices.Contains(out, n.Area().ID) {
			out = append(out, n.Area().ID)
		}
	}
	return out
}

// AddEvent appends e to the trigger table under e.Trigger.
func (w *World) AddEvent(e *Event) {
	w.triggers[e.Trigger] = append(w.triggers[e.Trigger], e)
}

// Events returns the events registered for kind, in registration order.
func (w *World) Events(kind TriggerKind) []*Event {
	return slices.Clone(w.triggers[kind])
}

// EventCount returns the number of registered events.
func (w *World) EventCount() int {
	n := 0
	for _, evs := range w.triggers {
		n += len(evs)
	}
	return n
}

// Outfit moves the player to the area areaID and puts the listed items in the
// inventory. It backs the development start.
//
// Postcondition: On error the player and every item stay where they were.
func (w *World) Outfit(areaID string, itemIDs []string) error {
	area, err := w.Areas.Get(areaID)
	if err != nil {
		return fmt.Errorf("start area: %w", err)
	}
	items := make([]*Item, 0, len(itemIDs))
	var errs []error
	for _, id := range itemIDs {
		it, err := w.Items.Get(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("item: %w", err))
			continue
		}
		items = append(items, it)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	Move(w.Player, area)
	for _, it := range items {
		Transfer(it, w.Player.Inventory)
	}
	return nil
}

// Firing is the outcome of checking one trigger kind.
type Firing struct {
	// Fired lists the events whose conditions held, in registration order.
	Fired []*Event
	// Messages are the texts produced by the fired events' effects.
	Messages []string
}

// Fire checks every event registered for kind against target. Each matching
// event applies its effects before the next event is checked.
//
// Postcondition: every registered event for kind has been checked exactly once.
func (w *World) Fire(kind TriggerKind, target Target) Firing {
	var f Firing
	for _, e := range w.triggers[kind] {
		if e.CheckConditions(target, w) {
			f.Fired = append(f.Fired, e)
			f.Messages = append(f.Messages, e.Apply(w)...)
		}
	}
	return f
}
