package locale

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize maps a user-supplied language code or BCP 47 tag (for example
// "en-US", "ja", "zh-Hant") to a supported code.
func Normalize(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if slices.Contains(Supported, code) {
		return code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ja":
		return "jp", true
	case "ko":
		return "kr", true
	case "fil", "tl":
		return "fl", true
	case "zh":
		script, _ := tag.Script()
		region, _ := tag.Region()
		if script.String() == "Hant" || slices.Contains([]string{"TW", "HK", "MO"}, region.String()) {
			return "tw", true
		}
		return "cn", true
	}
	if slices.Contains(Supported, base.String()) {
		return base.String(), true
	}
	return "", false
}

// tagFor returns the language tag used for casing rules of a supported code.
func tagFor(code string) language.Tag {
	switch code {
	case "jp":
		return language.Japanese
	case "kr":
		return language.Korean
	case "cn":
		return language.SimplifiedChinese
	case "tw":
		return language.TraditionalChinese
	case "fl":
		return language.Filipino
	}
	if t, err := language.Parse(code); err == nil {
		return t
	}
	return language.Und
}

// Capitalize upper-cases the first letter of s using the casing rules of the
// active language.
func (l *Locale) Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(tagFor(l.current)).String(string(r)) + s[size:]
}
