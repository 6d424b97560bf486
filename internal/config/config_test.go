package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Game: GameConfig{
			ContentFile:     "content/world.json",
			LocaleDir:       "content/locales",
			DefaultLanguage: "en",
			PlayerName:      "Evelyn",
		},
		Combat: CombatConfig{
			DefenseItem:      "knife",
			DefenseWordCount: 3,
			DefenseTimeout:   10 * time.Second,
		},
		Render: RenderConfig{
			Filler:         ".",
			DarkBrightness: 50,
			LineEnding:     "lf",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "nightfall.log", cfg.Logging.Output)
	assert.Equal(t, "knife", cfg.Combat.DefenseItem)
	assert.Equal(t, 3, cfg.Combat.DefenseWordCount)
	assert.Equal(t, 10*time.Second, cfg.Combat.DefenseTimeout)
	assert.Equal(t, 50, cfg.Render.DarkBrightness)
	assert.True(t, cfg.Game.AskLanguage)
	assert.Equal(t, "church", cfg.Dev.StartArea)
	assert.Contains(t, cfg.Dev.Items, "knife")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
  output: stderr
game:
  content_file: world.yaml
  languages: [en, es]
  player_name: Ada
  ask_language: false
  seed: 42
combat:
  defense_timeout: 3s
render:
  wrap_width: 72
  line_ending: crlf
  color: true
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "world.yaml", cfg.Game.ContentFile)
	assert.Equal(t, []string{"en", "es"}, cfg.Game.Languages)
	assert.Equal(t, "Ada", cfg.Game.PlayerName)
	assert.False(t, cfg.Game.AskLanguage)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 3*time.Second, cfg.Combat.DefenseTimeout)
	assert.Equal(t, 72, cfg.Render.WrapWidth)
	assert.Equal(t, "\r\n", cfg.Render.Terminator())
	assert.True(t, cfg.Render.Color)
	assert.Equal(t, "content/locales", cfg.Game.LocaleDir)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NIGHTFALL_GAME_PLAYER_NAME", "Morgan")
	t.Setenv("NIGHTFALL_RENDER_DARK_BRIGHTNESS", "20")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Morgan", cfg.Game.PlayerName)
	assert.Equal(t, 20, cfg.Render.DarkBrightness)
}

func TestLoadEnvFile(t *testing.T) {
	// Register restoration, then clear so the file can set the variable.
	t.Setenv("NIGHTFALL_GAME_PLAYER_NAME", "")
	require.NoError(t, os.Unsetenv("NIGHTFALL_GAME_PLAYER_NAME"))
	t.Setenv("NIGHTFALL_GAME_SEED", "7")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NIGHTFALL_GAME_PLAYER_NAME=Mara\nNIGHTFALL_GAME_SEED=99\n"), 0o600))
	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Mara", cfg.Game.PlayerName)
	assert.Equal(t, uint64(7), cfg.Game.Seed)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("combat.defense_word_count", 0)
	_, err := LoadFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combat.defense_word_count")
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateGame(t *testing.T) {
	cfg := validConfig()
	cfg.Game.DefaultLanguage = "xx"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Game.Languages = []string{"en", "klingon"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klingon")

	cfg = validConfig()
	cfg.Game.ContentFile = ""
	cfg.Game.PlayerName = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.content_file")
	assert.Contains(t, err.Error(), "game.player_name")
}

func TestValidateCombat(t *testing.T) {
	cfg := validConfig()
	cfg.Combat.DefenseTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Combat.DefenseItem = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRender(t *testing.T) {
	cfg := validConfig()
	cfg.Render.LineEnding = "cr"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Render.Filler = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Render.WrapWidth = -1
	assert.Error(t, cfg.Validate())
}

func TestPropertyDarkBrightnessRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.IntRange(-200, 300).Draw(t, "brightness")
		cfg := validConfig()
		cfg.Render.DarkBrightness = b
		err := cfg.Validate()
		if b >= 0 && b <= 100 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	})
}

func TestTerminator(t *testing.T) {
	assert.Equal(t, "\n", RenderConfig{LineEnding: "lf"}.Terminator())
	assert.Equal(t, "\r\n", RenderConfig{LineEnding: "crlf"}.Terminator())
}
