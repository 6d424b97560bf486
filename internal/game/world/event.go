package world

import (
	"fmt"

	"github.com/cory-johannsen/nightfall/internal/content"
)

// TriggerKind is the player action category that can activate events.
type TriggerKind int

// Trigger kinds. Movement ("go") fires TriggerEnter for the destination area.
const (
	TriggerEnter TriggerKind = iota + 1
	TriggerTake
	TriggerExamine
	TriggerUse
	TriggerThrow
)

// ParseTriggerKind maps a document trigger type to a TriggerKind.
func ParseTriggerKind(s string) (TriggerKind, error) {
	switch s {
	case content.TriggerEnter:
		return TriggerEnter, nil
	case content.TriggerTake:
		return TriggerTake, nil
	case content.TriggerExamine:
		return TriggerExamine, nil
	case content.TriggerUse:
		return TriggerUse, nil
	case content.TriggerThrow:
		return TriggerThrow, nil
	}
	return 0, fmt.Errorf("unknown trigger type %q", s)
}

func (k TriggerKind) String() string {
	switch k {
	case TriggerEnter:
		return content.TriggerEnter
	case TriggerTake:
		return content.TriggerTake
	case TriggerExamine:
		return content.TriggerExamine
	case TriggerUse:
		return content.TriggerUse
	case TriggerThrow:
		return content.TriggerThrow
	}
	return fmt.Sprintf("TriggerKind(%d)", int(k))
}

// targetKind distinguishes area targets from item targets.
type targetKind int

const (
	targetArea targetKind = iota + 1
	targetItem
)

// Target identifies what an action was performed on.
type Target struct {
	kind targetKind
	id   string
}

// AreaTarget returns the Target for an area.
func AreaTarget(a *Area) Target { return Target{kind: targetArea, id: a.ID} }

// ItemTarget returns the Target for an item.
func ItemTarget(i *Item) Target { return Target{kind: targetItem, id: i.ID} }

func (t Target) String() string {
	switch t.kind {
	case targetArea:
		return "area:" + t.id
	case targetItem:
		return "item:" + t.id
	}
	return "none"
}

// ConditionKind is an auxiliary predicate evaluated before an event fires.
type ConditionKind int

const (
	// ConditionInventoryHas holds when the player carries the item with id Data.
	ConditionInventoryHas ConditionKind = iota + 1
	// ConditionInArea holds when the player stands in the area with id Data.
	ConditionInArea
)

// Condition is one auxiliary predicate of an event.
type Condition struct {
	Kind ConditionKind
	Data string
}

// Holds evaluates the condition against w.
func (c Condition) Holds(w *World) bool {
	switch c.Kind {
	case ConditionInventoryHas:
		return w.Player.Inventory.Has(c.Data)
	case ConditionInArea:
		return w.Player.Area() != nil && w.Player.Area().ID == c.Data
	}
	return false
}

// EffectKind is the kind of state mutation an event applies.
type EffectKind int

const (
	EffectEndGame EffectKind = iota + 1
	EffectDialog
	EffectAddItemToInventory
	EffectTakeItem
	EffectAddItemToCurrentArea
	EffectForceMeetCondition
)

// Effect is one ordered action of an event. Text is used by dialogs, Item by
// the item effects, and Direction by force-meet.
type Effect struct {
	Kind      EffectKind
	Text      string
	Item      *Item
	Direction string
}

// Apply mutates w and returns any text the player should see.
func (e Effect) Apply(w *World) []string {
	p := w.Player
	switch e.Kind {
	case EffectEndGame:
		w.Running = false
	case EffectDialog:
		return []string{e.Text}
	case EffectAddItemToInventory:
		Transfer(e.Item, p.Inventory)
	case EffectTakeItem:
		if p.Area().Items.Has(e.Item.ID) {
			Transfer(e.Item, p.Inventory)
		}
	case EffectAddItemToCurrentArea:
		Transfer(e.Item, p.Area().Items)
	case EffectForceMeetCondition:
		if exit, ok := p.Area().Exits.GetSafe(e.Direction); ok {
			exit.Requirement.ForceFulfill()
			return []string{exit.Requirement.Fulfilled}
		}
	}
	return nil
}

// Event is a declarative rule fired by a player action.
type Event struct {
	ID         string
	Trigger    TriggerKind
	Target     Target
	Conditions []Condition
	Effects    []Effect
	// Once limits the event to a single evaluation per session.
	Once bool

	hasRun bool
}

// HasRun reports whether the event has ever been checked.
func (e *Event) HasRun() bool { return e.hasRun }

// shouldRun consumes the repeatability budget. The first call always returns
// true and marks the event as run; later calls return true only for
// repeatable events.
func (e *Event) shouldRun() bool {
	if !e.hasRun {
		e.hasRun = true
		return true
	}
	return !e.Once
}

// CheckConditions reports whether the event should fire for an action on
// target. The check is stateful: the first call marks the event as run even
// if the target or the auxiliary conditions then fail, so a once-event is
// evaluated at most one time per session.
func (e *Event) CheckConditions(target Target, w *World) bool {
	if !e.shouldRun() {
		return false
	}
	if target != e.Target {
		return false
	}
	for _, c := range e.Conditions {
		if !c.Holds(w) {
			return false
		}
	}
	return true
}

// Apply runs every effect in declared order and collects their text.
func (e *Event) Apply(w *World) []string {
	var out []string
	for _, eff := range e.Effects {
		out = append(out, eff.Apply(w)...)
	}
	return out
}
