// Package engine runs the turn loop: environmental narration before each
// prompt, command dispatch, and the consequences that follow every input
// (lighting, enemy movement, and combat).
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/nightfall/internal/game/command"
	"github.com/cory-johannsen/nightfall/internal/game/dice"
	"github.com/cory-johannsen/nightfall/internal/game/world"
	"github.com/cory-johannsen/nightfall/internal/locale"
	"github.com/cory-johannsen/nightfall/internal/render"
)

// Input supplies player lines. A timed read reports a timeout as ok == false.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
	ReadLineTimeout(ctx context.Context, d time.Duration) (text string, ok bool, err error)
}

// Translator is the localization service the engine speaks through.
type Translator interface {
	T(key string) string
	Tf(key string, vars locale.Vars) string
	Strings(key string) []string
	ConjunctionList(items []string) string
	Capitalize(s string) string
}

// Options tunes combat and darkness.
type Options struct {
	// DefenseItem is the item id that enables the word-challenge defense.
	DefenseItem string
	// DefenseWords is the number of challenge words.
	DefenseWords int
	// DefenseTimeout bounds the wait for the challenge answer.
	DefenseTimeout time.Duration
	// DarkBrightness is the output brightness in an unlit dark area.
	DarkBrightness int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		DefenseItem:    "knife",
		DefenseWords:   3,
		DefenseTimeout: 10 * time.Second,
		DarkBrightness: 50,
	}
}

// Deps are the collaborators of an Engine.
type Deps struct {
	World      *world.World
	Vocabulary *command.Vocabulary
	Locale     Translator
	// Out receives verbatim text.
	Out *render.Plain
	// Dark receives text subject to the current brightness. It must write to
	// the same stream as Out.
	Dark   *render.Obscured
	Input  Input
	Roller *dice.Roller
	Logger *zap.Logger
}

// Engine drives one game session.
type Engine struct {
	world  *world.World
	vocab  *command.Vocabulary
	loc    Translator
	out    *render.Plain
	dark   *render.Obscured
	in     Input
	roller *dice.Roller
	logger *zap.Logger
	opts   Options

	session uuid.UUID
	turn    int
}

// New creates an Engine for the given session.
//
// Precondition: every field of deps must be non-nil and deps.World must have a
// placed player.
func New(deps Deps, opts Options) *Engine {
	session := uuid.New()
	return &Engine{
		world:   deps.World,
		vocab:   deps.Vocabulary,
		loc:     deps.Locale,
		out:     deps.Out,
		dark:    deps.Dark,
		in:      deps.Input,
		roller:  deps.Roller,
		logger:  deps.Logger.With(zap.String("session", session.String())),
		opts:    opts,
		session: session,
	}
}

// Session returns the session id used in logs.
func (e *Engine) Session() uuid.UUID { return e.session }

// Run plays the session until the world stops running, the input ends, or
// ctx is cancelled.
//
// Postcondition: Returns nil on a graceful end, including end of input and
// cancellation.
func (e *Engine) Run(ctx context.Context) error {
	start := time.Now()
	e.logger.Info("session started",
		zap.String("player", e.world.Player.Name()),
		zap.String("area", e.world.Player.Area().ID),
	)

	e.out.Print(e.loc.T("general.opening"), e.out.LineEnding()+e.out.LineEnding())
	e.updateBrightness(false)
	e.describeArea()
	if err := e.PostInput(ctx); err != nil {
		return e.finish(start, err)
	}

	for e.world.Running {
		e.PreInput()
		e.out.Print(e.out.LineEnding()+e.loc.T("inputResponses.waitingInput")+e.out.LineEnding(), e.out.Style(render.Bold, "> "))
		line, err := e.in.ReadLine(ctx)
		if err != nil {
			return e.finish(start, err)
		}
		e.out.Println("")
		e.HandleInput(line)
		if err := e.PostInput(ctx); err != nil {
			return e.finish(start, err)
		}
	}
	return e.finish(start, nil)
}

func (e *Engine) finish(start time.Time, err error) error {
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		e.logger.Info("input closed")
		err = nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		e.logger.Info("session interrupted", zap.Error(err))
		err = nil
	default:
		err = fmt.Errorf("reading input: %w", err)
	}
	e.out.Println("")
	e.out.Println(e.loc.T("inputResponses.thankYou"))
	e.logger.Info("session ended",
		zap.Int("turns", e.turn),
		zap.Int("health", e.world.Player.Health()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err == nil {
		err = e.out.Err()
	}
	return err
}

func (e *Engine) say(key string, vars locale.Vars) {
	e.out.Println(e.loc.Tf(key, vars))
}

// sayStyled is say in color when color output is enabled.
func (e *Engine) sayStyled(color, key string, vars locale.Vars) {
	e.out.Println(e.out.Style(color, e.loc.Tf(key, vars)))
}

func (e *Engine) sayAll(msgs []string) {
	for _, m := range msgs {
		if m != "" {
			e.out.Println(m)
		}
	}
}
