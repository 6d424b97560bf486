package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/nightfall/internal/game/command"
	"github.com/cory-johannsen/nightfall/internal/game/world"
	"github.com/cory-johannsen/nightfall/internal/locale"
	"github.com/cory-johannsen/nightfall/internal/render"
)

// HandleInput parses line and runs the matching command. Lookup misses are
// answered with a message; they never fail.
func (e *Engine) HandleInput(line string) {
	e.turn++
	if strings.TrimSpace(line) == "" {
		e.say("inputResponses.standingStill", nil)
		return
	}
	res, ok := e.vocab.Parse(line)
	if !ok {
		e.logger.Debug("unknown command", zap.String("input", line))
		e.say("inputResponses.commandUnknown", nil)
		return
	}
	e.logger.Debug("dispatching command",
		zap.Stringer("group", res.Command.Group),
		zap.String("phrase", res.Phrase),
		zap.String("target", res.Target),
	)
	e.dispatch(res.Command, res.Target)
}

func (e *Engine) dispatch(cmd *command.Command, target string) {
	switch cmd.Group {
	case command.GroupExit:
		e.world.Running = false
	case command.GroupPass:
		e.say("inputResponses.standingStill", nil)
	case command.GroupClear:
		e.out.Clear()
	case command.GroupDict:
		e.handleDict()
	case command.GroupLoc:
		e.describeArea()
	case command.GroupInventory:
		e.handleInventory()
	case command.GroupHide:
		e.handleHide()
	case command.GroupThrow:
		e.handleThrow(target)
	case command.GroupGo:
		e.handleGo(target)
	case command.GroupExamine:
		e.handleExamine(target)
	case command.GroupTalk:
		e.handleTalk(target)
	case command.GroupTake:
		e.handleTake(target)
	case command.GroupUse:
		e.handleUse(target)
	default:
		e.say("inputResponses.commandNotExist", locale.Vars{"cmd_group": cmd.Name})
	}
}

func (e *Engine) handleDict() {
	e.out.Println(e.loc.T("inputResponses.availableCommands"))
	for _, phrase := range e.vocab.Phrases() {
		e.out.Println("- " + phrase)
	}
}

func (e *Engine) handleInventory() {
	items := e.world.Player.Inventory.Items()
	if len(items) == 0 {
		e.say("inputResponses.nothingInInventory", nil)
		return
	}
	e.say("inputResponses.playerItemList", locale.Vars{"items": e.loc.ConjunctionList(itemNames(items))})
}

func (e *Engine) handleHide() {
	p := e.world.Player
	if !p.Area().Hidable {
		e.say("inputResponses.cannotHide", nil)
		return
	}
	p.Hiding = true
	e.say("inputResponses.quicklyHide", nil)
}

func (e *Engine) handleThrow(target string) {
	p := e.world.Player
	item, ok := p.Inventory.ByName(target)
	if !ok {
		e.say("inputResponses.inventoryFail", locale.Vars{"item": target})
		return
	}
	from := item.Holder().Label()
	world.Transfer(item, p.Area().Items)
	e.logger.Debug("item thrown", zap.String("item", item.ID), zap.String("from", from), zap.String("to", item.Holder().Label()))
	e.say("inputResponses.throwItem", locale.Vars{"item": target})
	e.fire(world.TriggerThrow, world.ItemTarget(item))
}

func (e *Engine) handleGo(target string) {
	p := e.world.Player
	here := p.Area()
	exit, ok := findExit(here, target)
	if !ok || !exit.Requirement.Visible() {
		e.say("inputResponses.cannotGo", locale.Vars{"dir": target})
		return
	}
	dest, ok := exit.Passthrough(here)
	if !ok {
		e.out.Println(e.out.Style(render.Yellow, exit.Requirement.Unfulfilled))
		return
	}
	world.Move(p, dest)
	e.logger.Debug("player moved", zap.String("from", here.ID), zap.String("to", dest.ID))
	e.updateBrightness(true)
	e.describeArea()
	e.fire(world.TriggerEnter, world.AreaTarget(dest))
}

func (e *Engine) handleExamine(target string) {
	p := e.world.Player
	item, ok := p.Area().Items.ByName(target)
	if !ok {
		item, ok = p.Inventory.ByName(target)
	}
	if !ok {
		e.say("inputResponses.cannotExamine", nil)
		return
	}
	e.out.Println(item.Description)
	e.fire(world.TriggerExamine, world.ItemTarget(item))
}

func (e *Engine) handleTalk(target string) {
	area := e.world.Player.Area()
	if !area.HasNPC() {
		e.say("inputResponses.noOneToTalkTo", nil)
		return
	}
	for _, c := range area.Characters() {
		if !strings.EqualFold(c.Name(), target) {
			continue
		}
		if npc, ok := c.(*world.NPC); ok {
			e.out.Println(npc.Dialog)
		} else {
			e.say("inputResponses.dontWantToTalk", locale.Vars{"name": e.loc.Capitalize(c.Name())})
		}
		return
	}
	e.say("inputResponses.talkNotFound", locale.Vars{"name": target})
}

func (e *Engine) handleTake(target string) {
	p := e.world.Player
	item, ok := p.Area().Items.ByName(target)
	if !ok {
		e.say("inputResponses.takeDoesNotExist", locale.Vars{"item": target})
		return
	}
	if !item.InventoryItem {
		e.say("inputResponses.takeNotAllowed", locale.Vars{"item": target})
		return
	}
	from := item.Holder().Label()
	world.Transfer(item, p.Inventory)
	e.logger.Debug("item taken", zap.String("item", item.ID), zap.String("from", from), zap.String("to", item.Holder().Label()))
	e.say("inputResponses.takeSuccess", locale.Vars{"item": target})
	e.fire(world.TriggerTake, world.ItemTarget(item))
}

func (e *Engine) handleUse(target string) {
	p := e.world.Player
	item, ok := p.Inventory.ByName(target)
	if !ok {
		e.say("inputResponses.inventoryFail", locale.Vars{"item": target})
		return
	}
	if item.LightSource {
		p.Lantern = item.LightCount
		e.logger.Debug("lantern charged", zap.Int("charge", p.Lantern))
		e.say("inputResponses.useSuccess", locale.Vars{"item": target})
		return
	}
	used := false
	for _, req := range p.Area().UseItem(item) {
		used = true
		e.out.Println(e.out.Style(render.Green, req.Fulfilled))
	}
	if e.fire(world.TriggerUse, world.ItemTarget(item)) {
		used = true
	}
	if !used {
		e.say("inputResponses.useFail", nil)
	}
}

// fire runs the events registered for kind and prints their output. It
// reports whether any event fired.
func (e *Engine) fire(kind world.TriggerKind, target world.Target) bool {
	f := e.world.Fire(kind, target)
	for _, ev := range f.Fired {
		e.logger.Debug("event fired", zap.String("event", ev.ID), zap.Stringer("trigger", kind), zap.Stringer("target", target))
	}
	e.sayAll(f.Messages)
	return len(f.Fired) > 0
}

// findExit resolves a direction label case-insensitively.
func findExit(area *world.Area, dir string) (*world.Exit, bool) {
	if exit, ok := area.Exits.GetSafe(dir); ok {
		return exit, true
	}
	for key, exit := range area.Exits.All() {
		if strings.EqualFold(key, dir) {
			return exit, true
		}
	}
	return nil, false
}

func itemNames(items []*world.Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name()
	}
	return names
}
