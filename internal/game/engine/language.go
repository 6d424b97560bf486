package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/cory-johannsen/nightfall/internal/render"
)

// LanguageSelector is the part of the locale service used at startup.
type LanguageSelector interface {
	Languages() []string
	SetLanguage(code string) string
}

// PromptLanguage asks the player for a language and activates it.
// Unsupported answers select the default language.
//
// Postcondition: Returns the active language.
func PromptLanguage(ctx context.Context, in Input, out *render.Plain, loc LanguageSelector) (string, error) {
	out.Print(fmt.Sprintf("What language would you like to play in? (%s)", strings.Join(loc.Languages(), ", ")), out.LineEnding()+"> ")
	line, err := in.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("reading language: %w", err)
	}
	lang := loc.SetLanguage(line)
	out.Clear()
	return lang, nil
}
