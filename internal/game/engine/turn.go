package engine

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/nightfall/internal/game/dice"
	"github.com/cory-johannsen/nightfall/internal/game/world"
	"github.com/cory-johannsen/nightfall/internal/locale"
	"github.com/cory-johannsen/nightfall/internal/render"
)

// PreInput narrates the surroundings before a prompt: enemies in adjacent
// areas, and the end of a hiding turn.
func (e *Engine) PreInput() {
	p := e.world.Player
	here := p.Area()
	var danger []string
	for _, exit := range here.Exits.Values() {
		dest := exit.Dest(here)
		if dest.HasEnemy() && !slices.Contains(danger, dest.Name()) {
			danger = append(danger, dest.Name())
		}
	}
	if len(danger) > 0 {
		e.sayStyled(render.Yellow, "inputResponses.enemiesAdjacent", locale.Vars{"directions": e.loc.ConjunctionList(danger)})
	}
	if p.Hiding {
		e.sayStyled(render.Cyan, "inputResponses.safeToLeaveHiding", nil)
	}
	p.Hiding = false
}

// PostInput resolves the consequences of a turn. A dead player ends the
// game; otherwise the lantern burns down, the brightness is recomputed, and
// enemies either fight the player or roam.
//
// Postcondition: Returns an error only when ctx ends during a defense
// challenge.
func (e *Engine) PostInput(ctx context.Context) error {
	p := e.world.Player
	if p.Health() == 0 {
		e.endByDeath()
		return nil
	}
	if p.DepleteLantern() {
		e.sayStyled(render.Dim, "inputResponses.lightDepleted", nil)
	}
	e.updateBrightness(false)

	here := p.Area()
	enemies := here.Enemies()
	if len(enemies) == 0 {
		e.roam()
		return nil
	}
	for _, enemy := range enemies {
		if err := e.combat(ctx, enemy); err != nil {
			return err
		}
		e.relocate(enemy)
		if p.Health() == 0 {
			e.endByDeath()
			return nil
		}
	}
	return nil
}

func (e *Engine) endByDeath() {
	e.world.Running = false
	e.sayStyled(render.BrightRed, "inputResponses.playerHealthZero", nil)
}

// combat resolves one enemy's attack on the player.
func (e *Engine) combat(ctx context.Context, enemy *world.Enemy) error {
	p := e.world.Player
	area := p.Area()
	dmg := p.DamageFrom(enemy)
	log := e.logger.With(
		zap.String("enemy", enemy.Name()),
		zap.String("area", area.ID),
		zap.Int("damage", dmg),
		zap.Bool("lit", p.HasLight()),
	)

	switch {
	case p.Hiding && area.Hidable:
		if !e.roller.Chance(p.HidingSafety) {
			log.Debug("attack avoided by hiding", zap.Int("safety", p.HidingSafety))
			e.sayStyled(render.Cyan, "inputResponses.enemyAttackPlayerHidden", nil)
			return nil
		}
		log.Debug("hiding player found", zap.Int("safety", p.HidingSafety))
		p.Hiding = false
		e.sayStyled(render.Red, "inputResponses.enemyAttackPlayerFound", nil)
		e.damage(dmg)
	case p.Inventory.Has(e.opts.DefenseItem):
		ok, err := e.defend(ctx)
		if err != nil {
			return err
		}
		log.Debug("defense challenge", zap.Bool("success", ok))
		if ok {
			e.sayStyled(render.Cyan, "inputResponses.attackedDefenseSuccess", nil)
			return nil
		}
		e.damage(dmg)
		e.sayStyled(render.Red, "inputResponses.attackedDefenseFailure", nil)
	default:
		log.Debug("attack landed")
		e.sayStyled(render.Red, "inputResponses.attackedRegular", nil)
		e.damage(dmg)
	}
	return nil
}

func (e *Engine) damage(amount int) {
	change := e.world.Player.ApplyDamage(amount)
	if change.Died {
		e.sayStyled(render.BrightRed, "inputResponses.playerDied", nil)
		return
	}
	e.sayStyled(render.Green, "inputResponses.healthStatus", locale.Vars{"health": change.Current})
}

// defend runs the timed word challenge. It reports whether the player echoed
// every word, or the exact joined phrase, before the timeout.
func (e *Engine) defend(ctx context.Context) (bool, error) {
	pool := e.loc.Strings("mechanics.selfDefenseWords")
	if len(pool) == 0 {
		e.logger.Warn("no self-defense words for language")
		return false, nil
	}
	words := dice.Sample(e.roller, pool, e.opts.DefenseWords)
	phrase := e.loc.ConjunctionList(words)
	e.out.Print(e.out.Style(render.Red, e.loc.T("inputResponses.attackedCanDefend"))+e.out.LineEnding()+e.out.Style(render.Bold, phrase), e.out.LineEnding()+"> ")

	line, ok, err := e.in.ReadLineTimeout(ctx, e.opts.DefenseTimeout)
	switch {
	case errors.Is(err, io.EOF):
		ok = false
	case err != nil:
		return false, err
	}
	e.out.Println("")
	if !ok {
		e.sayStyled(render.Red, "inputResponses.attackedDefenseTooSlow", nil)
		return false, nil
	}
	if defenseMatches(line, words, phrase) {
		return true, nil
	}
	e.sayStyled(render.Red, "inputResponses.attackedDefenseMistake", nil)
	return false, nil
}

// defenseMatches reports whether answer contains every word or equals the
// joined phrase, ignoring case and surrounding space.
func defenseMatches(answer string, words []string, phrase string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == strings.ToLower(phrase) {
		return true
	}
	for _, w := range words {
		if !strings.Contains(answer, strings.ToLower(w)) {
			return false
		}
	}
	return true
}

// relocate sends enemy to a random area that holds no NPC and is not the
// player's area.
func (e *Engine) relocate(enemy *world.Enemy) {
	exclude := append(e.world.NPCAreaIDs(), e.world.Player.Area().ID)
	dest, ok := e.world.Areas.GetRandom(e.roller, exclude...)
	if !ok {
		e.logger.Warn("no area to relocate enemy", zap.String("enemy", enemy.Name()))
		return
	}
	from := enemy.Area().ID
	world.Move(enemy, dest)
	e.logger.Debug("enemy relocated", zap.String("enemy", enemy.Name()), zap.String("from", from), zap.String("to", dest.ID))
}

// roam moves every enemy one step through a random exit of its area. Exits
// into NPC areas are never taken; requirements do not block enemies.
func (e *Engine) roam() {
	for _, enemy := range e.world.Enemies() {
		here := enemy.Area()
		var blocked []string
		for dir, exit := range here.Exits.All() {
			if exit.Dest(here).HasNPC() {
				blocked = append(blocked, dir)
			}
		}
		exit, ok := here.Exits.GetRandom(e.roller, blocked...)
		if !ok {
			continue
		}
		dest := exit.Dest(here)
		world.Move(enemy, dest)
		e.logger.Debug("enemy roamed", zap.String("enemy", enemy.Name()), zap.String("from", here.ID), zap.String("to", dest.ID))
	}
}
