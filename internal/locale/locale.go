// Package locale resolves translation keys against per-language catalogs,
// selects the active language, and formats natural-language lists.
package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no other language is configured or requested.
const DefaultLanguage = "en"

// Supported lists every language code a catalog may be loaded for.
var Supported = []string{"en", "es", "id", "fr", "de", "jp", "kr", "cn", "tw", "ru", "ar", "pt", "it", "nl", "tr", "fl"}

// connectors joins the final pair of a conjunction list, per language.
var connectors = map[string]string{
	"en": "and",
	"es": "y",
	"id": "dan",
	"fr": "et",
	"de": "und",
	"jp": "と",
	"kr": "그리고",
	"cn": "和",
	"tw": "和",
	"ru": "и",
	"ar": "و",
	"pt": "e",
	"it": "e",
	"nl": "en",
	"tr": "ve",
	"fl": "og",
}

// Vars are named substitutions for %{name} placeholders.
type Vars map[string]any

// Locale holds one catalog per language and the active language. Catalogs
// are YAML node trees so map keys keep their file order.
type Locale struct {
	catalogs map[string]*yaml.Node
	def      string
	current  string
}

// New returns a Locale with no catalogs whose default language is def.
func New(def string) *Locale {
	return &Locale{catalogs: make(map[string]*yaml.Node), def: def, current: def}
}

// LoadDir loads every <code>.json, <code>.yaml and <code>.yml file in dir
// whose code is a supported language. If langs is non-empty only those codes
// are loaded.
//
// Precondition: dir must be readable.
// Postcondition: Returns a Locale whose default is def when def was loaded,
// otherwise the first loaded language in Supported order.
func LoadDir(dir, def string, langs []string) (*Locale, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading locale dir: %w", err)
	}
	l := New(def)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ext)
		if !slices.Contains(Supported, code) || (len(langs) > 0 && !slices.Contains(langs, code)) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", code, err)
		}
		if err := l.Add(code, data); err != nil {
			return nil, err
		}
	}
	if len(l.catalogs) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}
	if _, ok := l.catalogs[l.def]; !ok {
		l.def = l.Languages()[0]
	}
	l.current = l.def
	return l, nil
}

// Add parses data as a YAML or JSON catalog for lang.
func (l *Locale) Add(lang string, data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing locale %s: %w", lang, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("locale %s: top level must be a mapping", lang)
	}
	l.catalogs[lang] = doc.Content[0]
	return nil
}

// Languages returns the loaded language codes in Supported order.
func (l *Locale) Languages() []string {
	var out []string
	for _, code := range Supported {
		if _, ok := l.catalogs[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// Default returns the fallback language.
func (l *Locale) Default() string { return l.def }

// Language returns the active language.
func (l *Locale) Language() string { return l.current }

// SetLanguage activates the language identified by code after normalizing it.
// Unsupported or unloaded codes select the default language.
//
// Postcondition: Returns the active language.
func (l *Locale) SetLanguage(code string) string {
	l.current = l.def
	if norm, ok := Normalize(code); ok {
		if _, loaded := l.catalogs[norm]; loaded {
			l.current = norm
		}
	}
	return l.current
}

// T returns the string at the dotted key in the active language, falling back
// to the default language and then to the key itself.
func (l *Locale) T(key string) string {
	if n := l.lookup(key); n != nil && n.Kind == yaml.ScalarNode {
		return n.Value
	}
	return key
}

// Tf is T with %{name} placeholders replaced from vars.
func (l *Locale) Tf(key string, vars Vars) string {
	return Substitute(l.T(key), vars)
}

// Strings returns the list at the dotted key, or nil.
func (l *Locale) Strings(key string) []string {
	n := l.lookup(key)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		if c.Kind == yaml.ScalarNode {
			out = append(out, c.Value)
		}
	}
	return out
}

// Keys returns the keys of the mapping at the dotted key in file order.
func (l *Locale) Keys(key string) []string {
	n := l.lookup(key)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, n.Content[i].Value)
	}
	return out
}

func (l *Locale) lookup(key string) *yaml.Node {
	if n := find(l.catalogs[l.current], key); n != nil {
		return n
	}
	return find(l.catalogs[l.def], key)
}

func find(root *yaml.Node, key string) *yaml.Node {
	n := root
	for part := range strings.SplitSeq(key, ".") {
		if n == nil || n.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == part {
				next = n.Content[i+1]
				break
			}
		}
		n = next
	}
	return n
}

// Substitute replaces every %{name} in s with the formatted value of
// vars[name]. Unknown placeholders are left untouched.
func Substitute(s string, vars Vars) string {
	if len(vars) == 0 || !strings.Contains(s, "%{") {
		return s
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "%{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// ConjunctionList joins items as "A, B and C" using the active language's
// connector.
func (l *Locale) ConjunctionList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	conn, ok := connectors[l.current]
	if !ok {
		conn = connectors[DefaultLanguage]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conn + " " + items[len(items)-1]
}
