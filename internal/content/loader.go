package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Trigger, condition and affect type names as they appear in the document.
const (
	TriggerEnter   = "enter"
	TriggerTake    = "take"
	TriggerExamine = "examine"
	TriggerUse     = "use"
	TriggerThrow   = "throw"

	ConditionInventoryHas = "inventory_has"
	ConditionArea         = "area"

	AffectEndGame              = "end_game"
	AffectDialog               = "dialog"
	AffectAddItemToInventory   = "add_item_to_inventory"
	AffectTakeItem             = "take_item"
	AffectAddItemToCurrentArea = "add_item_to_current_area"
	AffectForceMeetCondition   = "force_meet_condition_in_current_area"
)

var itemAffects = map[string]bool{
	AffectAddItemToInventory:   true,
	AffectTakeItem:             true,
	AffectAddItemToCurrentArea: true,
}

// LoadFile reads and validates a world document. JSON documents are accepted
// because JSON is a subset of YAML.
//
// Precondition: path must point to a readable file.
// Postcondition: Returns a validated Document or a non-nil error.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world document %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a world document.
//
// Postcondition: Returns a validated Document or a non-nil error.
func LoadBytes(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing world document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validating world document: %w", err)
	}
	return &doc, nil
}

// Validate checks identifier uniqueness and that every reference resolves.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (d *Document) Validate() error {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	areas := idSet(len(d.Areas))
	for _, a := range d.Areas {
		if !areas.insert(a.ID) {
			add("area %q: duplicate or empty id", a.ID)
		}
	}
	groups := idSet(len(d.Groups))
	for _, g := range d.Groups {
		if !groups.insert(g.ID) {
			add("group %q: duplicate or empty id", g.ID)
		}
	}
	items := idSet(len(d.Items))
	for _, it := range d.Items {
		if !items.insert(it.ID) {
			add("item %q: duplicate or empty id", it.ID)
		}
		if it.LightCount < 0 {
			add("item %q: lightCount must be >= 0", it.ID)
		}
	}
	reqs := idSet(len(d.TransitionRequirements))
	for _, r := range d.TransitionRequirements {
		if !reqs.insert(r.ID) {
			add("transition requirement %q: duplicate or empty id", r.ID)
		}
		for _, itemID := range r.FulfillCondition.Items {
			if !items.has(itemID) {
				add("transition requirement %q: unknown item %q", r.ID, itemID)
			}
		}
	}

	if !areas.has(d.General.Player.StartingState.Area) {
		add("general.player.startingState.r_area: unknown area %q", d.General.Player.StartingState.Area)
	}
	if s := d.General.Player.HidingSafety; s < 0 || s > 100 {
		add("general.player.hidingSafety must be 0-100, got %d", s)
	}

	for _, a := range d.Areas {
		for _, g := range a.Groups {
			if !groups.has(g) {
				add("area %q: unknown group %q", a.ID, g)
			}
		}
		for _, e := range a.Exits {
			if e.Direction == "" {
				add("area %q: exit to %q has empty direction", a.ID, e.Pointer)
			}
			if !areas.has(e.Pointer) {
				add("area %q: exit %q targets unknown area %q", a.ID, e.Direction, e.Pointer)
			}
			if e.Requirement != nil && !reqs.has(e.Requirement.TransitionRequirement) {
				add("area %q: exit %q references unknown requirement %q", a.ID, e.Direction, e.Requirement.TransitionRequirement)
			}
		}
		for _, itemID := range a.Items {
			if !items.has(itemID) {
				add("area %q: unknown item %q", a.ID, itemID)
			}
		}
	}

	for _, n := range d.NPCs {
		if !areas.has(n.Area) {
			add("npc %q: unknown area %q", n.ID, n.Area)
		}
	}
	for _, e := range d.Enemies {
		if !groups.has(e.RoamingGroup) {
			add("enemy %q: unknown roaming group %q", e.ID, e.RoamingGroup)
		}
		if e.Damage < 0 || e.DamageWithLight < 0 {
			add("enemy %q: damage must be >= 0", e.ID)
		}
	}

	for _, ev := range d.Events {
		switch ev.Trigger.Type {
		case TriggerEnter:
			if !areas.has(ev.Trigger.Data) {
				add("event %q: enter trigger targets unknown area %q", ev.ID, ev.Trigger.Data)
			}
		case TriggerTake, TriggerExamine, TriggerUse, TriggerThrow:
			if !items.has(ev.Trigger.Data) {
				add("event %q: %s trigger targets unknown item %q", ev.ID, ev.Trigger.Type, ev.Trigger.Data)
			}
		default:
			add("event %q: unknown trigger type %q", ev.ID, ev.Trigger.Type)
		}
		for _, c := range ev.AdditionalConditions {
			switch c.Type {
			case ConditionInventoryHas:
				if !items.has(c.Data) {
					add("event %q: condition references unknown item %q", ev.ID, c.Data)
				}
			case ConditionArea:
				if !areas.has(c.Data) {
					add("event %q: condition references unknown area %q", ev.ID, c.Data)
				}
			default:
				add("event %q: unknown condition type %q", ev.ID, c.Type)
			}
		}
		for _, a := range ev.Affects {
			switch {
			case itemAffects[a.Type]:
				if !items.has(a.Data) {
					add("event %q: %s references unknown item %q", ev.ID, a.Type, a.Data)
				}
			case a.Type == AffectEndGame, a.Type == AffectDialog, a.Type == AffectForceMeetCondition:
			default:
				add("event %q: unknown affect type %q", ev.ID, a.Type)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

type ids map[string]bool

func idSet(n int) ids { return make(ids, n) }

// insert adds id and reports whether it was new and non-empty.
func (s ids) insert(id string) bool {
	if id == "" || s[id] {
		return false
	}
	s[id] = true
	return true
}

func (s ids) has(id string) bool { return s[id] }
