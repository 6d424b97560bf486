// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SupportedLanguages are the language codes a locale catalog may provide.
var SupportedLanguages = []string{"en", "es", "id", "fr", "de", "jp", "kr", "cn", "tw", "ru", "ar", "pt", "it", "nl", "tr", "fl"}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, or "stderr". The game owns stdout.
	Output string `mapstructure:"output"`
}

// GameConfig holds session settings.
type GameConfig struct {
	// ContentFile is the world document (JSON or YAML).
	ContentFile string `mapstructure:"content_file"`
	// LocaleDir holds one <code>.json or <code>.yaml catalog per language.
	LocaleDir string `mapstructure:"locale_dir"`
	// DefaultLanguage is used when the player picks an unsupported language.
	DefaultLanguage string `mapstructure:"default_language"`
	// Languages restricts the catalogs loaded. Empty loads every catalog found.
	Languages []string `mapstructure:"languages"`
	// PlayerName names the player character.
	PlayerName string `mapstructure:"player_name"`
	// AskLanguage prompts for a language at startup.
	AskLanguage bool `mapstructure:"ask_language"`
	// Seed makes every random decision reproducible. Zero uses a
	// cryptographic source.
	Seed uint64 `mapstructure:"seed"`
}

// DevConfig holds development mode overrides, applied with the -dev flag.
type DevConfig struct {
	// StartArea replaces the document's starting area.
	StartArea string `mapstructure:"start_area"`
	// Items are placed in the player's inventory.
	Items []string `mapstructure:"items"`
}

// CombatConfig tunes enemy encounters.
type CombatConfig struct {
	// DefenseItem is the item id that grants the word-challenge defense.
	DefenseItem string `mapstructure:"defense_item"`
	// DefenseWordCount is the number of words the player must echo.
	DefenseWordCount int `mapstructure:"defense_word_count"`
	// DefenseTimeout bounds the wait for the player's answer.
	DefenseTimeout time.Duration `mapstructure:"defense_timeout"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	// WrapWidth word-wraps output at this many columns. Zero disables wrapping.
	WrapWidth int `mapstructure:"wrap_width"`
	// Filler replaces characters lost to darkness.
	Filler string `mapstructure:"filler"`
	// DarkBrightness is the brightness (0-100) of an unlit dark area.
	DarkBrightness int `mapstructure:"dark_brightness"`
	// LineEnding terminates output lines: "lf" or "crlf".
	LineEnding string `mapstructure:"line_ending"`
	// Color enables ANSI styling.
	Color bool `mapstructure:"color"`
}

// Terminator returns the byte sequence for LineEnding.
func (r RenderConfig) Terminator() string {
	if r.LineEnding == "crlf" {
		return "\r\n"
	}
	return "\n"
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Dev     DevConfig     `mapstructure:"dev"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Render  RenderConfig  `mapstructure:"render"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRender(c.Render); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.ContentFile == "" {
		errs = append(errs, "game.content_file must not be empty")
	}
	if g.LocaleDir == "" {
		errs = append(errs, "game.locale_dir must not be empty")
	}
	if !slices.Contains(SupportedLanguages, g.DefaultLanguage) {
		errs = append(errs, fmt.Sprintf("game.default_language must be a supported language, got %q", g.DefaultLanguage))
	}
	for _, lang := range g.Languages {
		if !slices.Contains(SupportedLanguages, lang) {
			errs = append(errs, fmt.Sprintf("game.languages contains unsupported language %q", lang))
		}
	}
	if g.PlayerName == "" {
		errs = append(errs, "game.player_name must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.DefenseItem == "" {
		errs = append(errs, "combat.defense_item must not be empty")
	}
	if c.DefenseWordCount < 1 {
		errs = append(errs, fmt.Sprintf("combat.defense_word_count must be >= 1, got %d", c.DefenseWordCount))
	}
	if c.DefenseTimeout <= 0 {
		errs = append(errs, "combat.defense_timeout must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRender(r RenderConfig) error {
	var errs []string
	if r.WrapWidth < 0 {
		errs = append(errs, fmt.Sprintf("render.wrap_width must be >= 0, got %d", r.WrapWidth))
	}
	if r.Filler == "" {
		errs = append(errs, "render.filler must not be empty")
	}
	if r.DarkBrightness < 0 || r.DarkBrightness > 100 {
		errs = append(errs, fmt.Sprintf("render.dark_brightness must be 0-100, got %d", r.DarkBrightness))
	}
	if r.LineEnding != "lf" && r.LineEnding != "crlf" {
		errs = append(errs, fmt.Sprintf("render.line_ending must be one of [lf, crlf], got %q", r.LineEnding))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment overrides only.
//
// Precondition: path must be empty or a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with NIGHTFALL_ prefix
	v.SetEnvPrefix("NIGHTFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadEnvFile copies KEY=VALUE pairs from a dotenv file into the process
// environment so they can override configuration through the NIGHTFALL_
// prefix. Variables that are already set keep their value.
//
// Postcondition: A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) { setDefaults(v) }

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "nightfall.log")

	v.SetDefault("game.content_file", "content/world.json")
	v.SetDefault("game.locale_dir", "content/locales")
	v.SetDefault("game.default_language", "en")
	v.SetDefault("game.languages", []string{})
	v.SetDefault("game.player_name", "Evelyn")
	v.SetDefault("game.ask_language", true)
	v.SetDefault("game.seed", 0)

	v.SetDefault("dev.start_area", "church")
	v.SetDefault("dev.items", []string{"knife", "libraryKey", "mansionKey", "cleansingGadget"})

	v.SetDefault("combat.defense_item", "knife")
	v.SetDefault("combat.defense_word_count", 3)
	v.SetDefault("combat.defense_timeout", "10s")

	v.SetDefault("render.wrap_width", 0)
	v.SetDefault("render.filler", ".")
	v.SetDefault("render.dark_brightness", 50)
	v.SetDefault("render.line_ending", "lf")
	v.SetDefault("render.color", false)
}
