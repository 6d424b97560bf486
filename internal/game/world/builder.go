package world

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/nightfall/internal/content"
	"github.com/cory-johannsen/nightfall/internal/game/dice"
)

// ErrNoStartingArea is returned by Build when the player's starting area does
// not resolve.
var ErrNoStartingArea = errors.New("starting area not found")

// Translator resolves localization keys to display text.
type Translator interface {
	T(key string) string
}

// Build constructs a World from a content document. Display text is
// resolved through tr at build time, and enemies are spawned at random areas
// of their roaming group using src.
//
// Precondition: doc should have passed content.Document.Validate; unresolved
// references are skipped with a warning.
// Postcondition: Returns a running World with the player placed at the
// starting area, or ErrNoStartingArea.
func Build(doc *content.Document, tr Translator, src dice.Source, playerName string, logger *zap.Logger) (*World, error) {
	b := &builder{doc: doc, tr: tr, src: src, logger: logger, w: New()}
	b.items()
	b.groups()
	b.areas()
	b.exits()
	if err := b.player(playerName); err != nil {
		return nil, err
	}
	b.npcs()
	b.enemies()
	if err := b.events(); err != nil {
		return nil, err
	}
	logger.Info("world built",
		zap.Int("areas", b.w.Areas.Len()),
		zap.Int("items", b.w.Items.Len()),
		zap.Int("characters", len(b.w.characters)),
		zap.Int("events", b.w.EventCount()),
	)
	return b.w, nil
}

type builder struct {
	doc    *content.Document
	tr     Translator
	src    dice.Source
	logger *zap.Logger
	w      *World
}

func (b *builder) items() {
	for _, rec := range b.doc.Items {
		item := NewItem(rec.ID, b.tr.T(rec.NameKey), b.tr.T(rec.DescriptionKey))
		item.InventoryItem = rec.InventoryItem
		item.LightSource = rec.LightItem
		item.LightCount = rec.LightCount
		item.Hidden = rec.Hidden
		b.w.Items.Add(rec.ID, item)
	}
}

func (b *builder) groups() {
	for _, rec := range b.doc.Groups {
		b.w.Groups.Add(rec.ID, NewGroup(rec.ID, b.tr.T(rec.NameKey), b.tr.T(rec.EnterDescription), b.tr.T(rec.ExitDescription)))
	}
}

func (b *builder) areas() {
	for _, rec := range b.doc.Areas {
		area := NewArea(rec.ID, b.tr.T(rec.NameKey), b.tr.T(rec.EnterDescription))
		area.Config = rec
		area.RequireLight = rec.RequireLight
		area.Hidable = rec.Hidable
		b.w.Areas.Add(rec.ID, area)
		for _, gid := range rec.Groups {
			g, ok := b.w.Groups.GetSafe(gid)
			if !ok {
				b.logger.Warn("area references unknown group", zap.String("area", rec.ID), zap.String("group", gid))
				continue
			}
			g.Areas.Add(area.ID, area)
			area.Groups = append(area.Groups, g)
		}
	}
}

// exits links every declared exit. An exit declared by both of its areas is
// registered once and shared, so its requirement is the merge of whatever
// either side declared. The pending table is keyed "<declarer>_to_<target>"
// from the viewpoint of the area expected to close the pair.
func (b *builder) exits() {
	reqs := make(map[string]content.TransitionRequirement, len(b.doc.TransitionRequirements))
	for _, r := range b.doc.TransitionRequirements {
		reqs[r.ID] = r
	}
	pending := make(map[string]*Exit)

	for _, rec := range b.doc.Areas {
		area, err := b.w.Areas.Get(rec.ID)
		if err != nil {
			continue
		}
		for _, x := range rec.Exits {
			dest, ok := b.w.Areas.GetSafe(x.Pointer)
			if !ok {
				b.logger.Warn("exit points at unknown area", zap.String("area", rec.ID), zap.String("pointer", x.Pointer))
				continue
			}
			key := fmt.Sprintf("%s_to_%s", area.ID, dest.ID)
			exit, shared := pending[key]
			if shared {
				delete(pending, key)
			} else {
				exit = NewExit(x.Direction, area, dest, nil)
				pending[fmt.Sprintf("%s_to_%s", dest.ID, area.ID)] = exit
			}
			if x.Requirement != nil {
				if r, ok := reqs[x.Requirement.TransitionRequirement]; ok {
					b.mergeRequirement(exit.Requirement, r)
				} else {
					b.logger.Warn("exit references unknown requirement",
						zap.String("area", rec.ID), zap.String("requirement", x.Requirement.TransitionRequirement))
				}
			}
			area.Exits.Add(x.Direction, exit)
		}
		for _, id := range rec.Items {
			item, ok := b.w.Items.GetSafe(id)
			if !ok {
				b.logger.Warn("area references unknown item", zap.String("area", rec.ID), zap.String("item", id))
				continue
			}
			Transfer(item, area.Items)
		}
	}
}

func (b *builder) mergeRequirement(dst *TransitionRequirement, rec content.TransitionRequirement) {
	if dst.Unfulfilled == "" {
		dst.Unfulfilled = b.tr.T(rec.Unfulfilled)
	}
	if dst.Fulfilled == "" {
		dst.Fulfilled = b.tr.T(rec.Fulfilled)
	}
	dst.HiddenUntilFulfilled = dst.HiddenUntilFulfilled || rec.HiddenWhenUnfulfilled
	for _, id := range rec.FulfillCondition.Items {
		dst.AddCondition(id)
	}
}

func (b *builder) player(name string) error {
	start := b.doc.General.Player.StartingState.Area
	area, ok := b.w.Areas.GetSafe(start)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoStartingArea, start)
	}
	b.w.AddCharacter(NewPlayer(name, b.doc.General.Player.HidingSafety), area)
	return nil
}

func (b *builder) npcs() {
	for _, rec := range b.doc.NPCs {
		area, ok := b.w.Areas.GetSafe(rec.Area)
		if !ok {
			b.logger.Warn("npc placed in unknown area", zap.String("npc", rec.ID), zap.String("area", rec.Area))
			continue
		}
		b.w.AddCharacter(NewNPC(b.tr.T(rec.NameKey), b.tr.T(rec.DialogKey)), area)
	}
}

func (b *builder) enemies() {
	for _, rec := range b.doc.Enemies {
		g, ok := b.w.Groups.GetSafe(rec.RoamingGroup)
		if !ok {
			b.logger.Warn("enemy roams unknown group", zap.String("enemy", rec.ID), zap.String("group", rec.RoamingGroup))
			continue
		}
		area, ok := g.Areas.GetRandom(b.src, b.w.NPCAreaIDs()...)
		if !ok {
			b.logger.Warn("no spawn area for enemy", zap.String("enemy", rec.ID), zap.String("group", rec.RoamingGroup))
			continue
		}
		b.w.AddCharacter(NewEnemy(rec.ID, rec.Damage, rec.DamageWithLight), area)
		b.logger.Debug("enemy spawned", zap.String("enemy", rec.ID), zap.String("area", area.ID))
	}
}

func (b *builder) events() error {
	var errs []error
	for _, rec := range b.doc.Events {
		e, err := b.event(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %q: %w", rec.ID, err))
			continue
		}
		b.w.AddEvent(e)
	}
	return errors.Join(errs...)
}

func (b *builder) event(rec content.Event) (*Event, error) {
	kind, err := ParseTriggerKind(rec.Trigger.Type)
	if err != nil {
		return nil, err
	}
	e := &Event{ID: rec.ID, Trigger: kind, Once: rec.Once}
	if kind == TriggerEnter {
		area, err := b.w.Areas.Get(rec.Trigger.Data)
		if err != nil {
			return nil, fmt.Errorf("trigger: %w", err)
		}
		e.Target = AreaTarget(area)
	} else {
		item, err := b.w.Items.Get(rec.Trigger.Data)
		if err != nil {
			return nil, fmt.Errorf("trigger: %w", err)
		}
		e.Target = ItemTarget(item)
	}

	for _, c := range rec.AdditionalConditions {
		switch c.Type {
		case content.ConditionInventoryHas:
			e.Conditions = append(e.Conditions, Condition{Kind: ConditionInventoryHas, Data: c.Data})
		case content.ConditionArea:
			e.Conditions = append(e.Conditions, Condition{Kind: ConditionInArea, Data: c.Data})
		default:
			return nil, fmt.Errorf("unknown condition type %q", c.Type)
		}
	}

	for _, a := range rec.Affects {
		eff, err := b.effect(a)
		if err != nil {
			return nil, err
		}
		e.Effects = append(e.Effects, eff)
	}
	return e, nil
}

func (b *builder) effect(a content.Info) (Effect, error) {
	item := func(kind EffectKind) (Effect, error) {
		it, err := b.w.Items.Get(a.Data)
		if err != nil {
			return Effect{}, fmt.Errorf("affect %s: %w", a.Type, err)
		}
		return Effect{Kind: kind, Item: it}, nil
	}
	switch a.Type {
	case content.AffectEndGame:
		return Effect{Kind: EffectEndGame}, nil
	case content.AffectDialog:
		return Effect{Kind: EffectDialog, Text: b.tr.T(a.Data)}, nil
	case content.AffectAddItemToInventory:
		return item(EffectAddItemToInventory)
	case content.AffectTakeItem:
		return item(EffectTakeItem)
	case content.AffectAddItemToCurrentArea:
		return item(EffectAddItemToCurrentArea)
	case content.AffectForceMeetCondition:
		return Effect{Kind: EffectForceMeetCondition, Direction: a.Data}, nil
	}
	return Effect{}, fmt.Errorf("unknown affect type %q", a.Type)
}
