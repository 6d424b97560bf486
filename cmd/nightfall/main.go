// Package main provides the nightfall binary, which plays one text adventure
// session on the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/nightfall/internal/config"
	"github.com/cory-johannsen/nightfall/internal/console"
	"github.com/cory-johannsen/nightfall/internal/content"
	"github.com/cory-johannsen/nightfall/internal/game/command"
	"github.com/cory-johannsen/nightfall/internal/game/dice"
	"github.com/cory-johannsen/nightfall/internal/game/engine"
	"github.com/cory-johannsen/nightfall/internal/game/world"
	"github.com/cory-johannsen/nightfall/internal/locale"
	"github.com/cory-johannsen/nightfall/internal/observability"
	"github.com/cory-johannsen/nightfall/internal/render"
	"github.com/cory-johannsen/nightfall/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/nightfall.yaml", "path to configuration file; empty uses defaults")
	envPath := flag.String("env", ".env", "path to an optional dotenv file of NIGHTFALL_ overrides")
	dev := flag.Bool("dev", false, "start in the development area with the development items")
	lang := flag.String("lang", "", "language code; skips the language prompt")
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatalf("loading env file: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting nightfall",
		zap.String("content", cfg.Game.ContentFile),
		zap.Bool("dev", *dev),
	)

	doc, err := content.LoadFile(cfg.Game.ContentFile)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	loc, err := locale.LoadDir(cfg.Game.LocaleDir, cfg.Game.DefaultLanguage, cfg.Game.Languages)
	if err != nil {
		logger.Fatal("loading locales", zap.Error(err))
	}
	logger.Info("locales loaded", zap.Strings("languages", loc.Languages()))

	out := render.NewPlain(os.Stdout, render.Options{
		LineEnding: cfg.Render.Terminator(),
		WrapWidth:  cfg.Render.WrapWidth,
		Color:      cfg.Render.Color,
	})
	in := console.NewReader(os.Stdin)

	ctx := context.Background()
	switch {
	case *lang != "":
		loc.SetLanguage(*lang)
	case cfg.Game.AskLanguage && len(loc.Languages()) > 1:
		if _, err := engine.PromptLanguage(ctx, in, out, loc); err != nil {
			logger.Info("no language chosen", zap.Error(err))
			return
		}
	}
	logger.Info("language selected", zap.String("language", loc.Language()))

	var src dice.Source
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(src, logger)

	// Darkness draws from its own stream so obscured text never shifts the
	// game's logged rolls.
	var darkSrc dice.Source
	if cfg.Game.Seed != 0 {
		darkSrc = dice.NewSeededSource(cfg.Game.Seed + 1)
	} else {
		darkSrc = dice.NewCryptoSource()
	}

	w, err := world.Build(doc, loc, roller, cfg.Game.PlayerName, logger)
	if err != nil {
		logger.Fatal("building world", zap.Error(err))
	}
	if *dev {
		if err := w.Outfit(cfg.Dev.StartArea, cfg.Dev.Items); err != nil {
			logger.Fatal("applying dev start", zap.Error(err))
		}
	}

	vocab, err := command.LoadVocabulary(loc, doc.Commands)
	if err != nil {
		logger.Fatal("loading vocabulary", zap.Error(err))
	}
	logger.Info("vocabulary loaded",
		zap.Int("commands", len(vocab.Commands())),
		zap.Int("phrases", len(vocab.Phrases())),
	)

	eng := engine.New(engine.Deps{
		World:      w,
		Vocabulary: vocab,
		Locale:     loc,
		Out:        out,
		Dark:       render.NewObscured(out, darkSrc, cfg.Render.Filler),
		Input:      in,
		Roller:     roller,
		Logger:     logger,
	}, engine.Options{
		DefenseItem:    cfg.Combat.DefenseItem,
		DefenseWords:   cfg.Combat.DefenseWordCount,
		DefenseTimeout: cfg.Combat.DefenseTimeout,
		DarkBrightness: cfg.Render.DarkBrightness,
	})

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("game", &server.FuncService{
		StartFn: eng.Run,
	})

	logger.Info("session ready",
		zap.String("session", eng.Session().String()),
		zap.Duration("startup", time.Since(start)),
	)
	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("session failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
