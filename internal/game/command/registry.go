package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/nightfall/internal/content"
)

// Vocabulary maps input phrases to command groups.
type Vocabulary struct {
	commands []*Command
	phrases  map[string]*Command // normalized phrase → command
	order    []string
}

// NewVocabulary creates a Vocabulary from cmds. Phrases are lowercased and
// their whitespace collapsed.
//
// Precondition: No phrase may belong to two commands.
// Postcondition: Returns a Vocabulary or an error on phrase collisions.
func NewVocabulary(cmds []Command) (*Vocabulary, error) {
	v := &Vocabulary{phrases: make(map[string]*Command)}
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Group == GroupUnknown {
			cmd.Group, _ = ParseGroup(cmd.Name)
		}
		v.commands = append(v.commands, cmd)
		for _, p := range cmd.Phrases {
			phrase := normalize(p)
			if phrase == "" {
				continue
			}
			if existing, ok := v.phrases[phrase]; ok {
				if existing == cmd {
					continue
				}
				return nil, fmt.Errorf("duplicate phrase %q: used by %q and %q", phrase, existing.Name, cmd.Name)
			}
			v.phrases[phrase] = cmd
			v.order = append(v.order, phrase)
		}
	}
	return v, nil
}

// DefaultVocabulary creates a Vocabulary with the built-in commands.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default vocabulary: %v", err))
	}
	return v
}

// Phrasebook resolves localized phrase lists.
type Phrasebook interface {
	Keys(key string) []string
	Strings(key string) []string
}

// LoadVocabulary builds the vocabulary from the document's command records,
// each naming a phrase list in pb. Without records, every group under the
// "commands" key of pb is used. Without either, the built-in commands are
// used.
func LoadVocabulary(pb Phrasebook, records []content.Command) (*Vocabulary, error) {
	var cmds []Command
	for _, rec := range records {
		cmds = append(cmds, Command{Name: rec.ID, Phrases: pb.Strings(rec.VocabularyList)})
	}
	if len(records) == 0 {
		for _, id := range pb.Keys("commands") {
			cmds = append(cmds, Command{Name: id, Phrases: pb.Strings("commands." + id)})
		}
	}
	if len(cmds) == 0 {
		cmds = BuiltinCommands()
	}
	return NewVocabulary(cmds)
}

// Resolve looks up a command by exact phrase.
func (v *Vocabulary) Resolve(phrase string) (*Command, bool) {
	cmd, ok := v.phrases[normalize(phrase)]
	return cmd, ok
}

// Commands returns every command in declaration order.
func (v *Vocabulary) Commands() []*Command {
	return append([]*Command(nil), v.commands...)
}

// Phrases returns every phrase in declaration order.
func (v *Vocabulary) Phrases() []string {
	return append([]string(nil), v.order...)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
