package engine

import (
	"strings"

	"github.com/cory-johannsen/nightfall/internal/game/world"
	"github.com/cory-johannsen/nightfall/internal/locale"
	"github.com/cory-johannsen/nightfall/internal/render"
)

// describeArea narrates the player's area through the darkness sink.
func (e *Engine) describeArea() {
	e.dark.Println(e.areaDescription(e.world.Player.Area()))
}

// areaDescription is the enter description followed by the visible items,
// the other characters, the visible exits, and whether the area is hidable.
func (e *Engine) areaDescription(a *world.Area) string {
	parts := []string{a.EnterDescription}

	var items []string
	for _, it := range a.Items.Items() {
		if !it.Hidden {
			items = append(items, it.Name())
		}
	}
	if len(items) > 0 {
		parts = append(parts, e.loc.Tf("inputResponses.areaListItems", locale.Vars{"items": e.loc.ConjunctionList(items)}))
	}

	var chars []string
	for _, c := range a.Characters() {
		if _, ok := c.(*world.Player); !ok {
			chars = append(chars, e.loc.Capitalize(c.Name()))
		}
	}
	if len(chars) > 0 {
		parts = append(parts, e.loc.Tf("inputResponses.areaListCharacters", locale.Vars{"characters": e.loc.ConjunctionList(chars)}))
	}

	var exits []string
	for _, de := range a.VisibleExits() {
		exits = append(exits, e.loc.Tf("inputResponses.dirToDest", locale.Vars{"dir": de.Direction, "dest": de.Exit.Dest(a).Name()}))
	}
	if len(exits) > 0 {
		parts = append(parts, e.loc.Tf("inputResponses.areaListExits", locale.Vars{"exits": e.loc.ConjunctionList(exits)}))
	}

	if a.Hidable {
		parts = append(parts, e.loc.T("inputResponses.areaHidable"))
	}
	return strings.Join(parts, " ")
}

// updateBrightness dims output in a dark area without lantern charge, and
// optionally says so.
func (e *Engine) updateBrightness(announce bool) {
	p := e.world.Player
	if !p.Area().RequireLight || p.HasLight() {
		e.dark.SetBrightness(100)
		return
	}
	e.dark.SetBrightness(e.opts.DarkBrightness)
	if announce {
		e.sayStyled(render.Dim, "inputResponses.tooDark", nil)
	}
}
