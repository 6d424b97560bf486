package command

import "strings"

// ParseResult is a matched input line.
type ParseResult struct {
	// Command is the matched command.
	Command *Command
	// Phrase is the vocabulary phrase that matched.
	Phrase string
	// Target is the text after the phrase, lowercased and space-joined.
	Target string
}

// Parse matches line against the vocabulary. Each prefix of the line's
// words is looked up, and the longest prefix that is a known phrase wins;
// the remaining words form the target.
//
// Postcondition: Returns (result, true) if any prefix matched, otherwise
// (ParseResult{}, false). Empty input never matches.
func (v *Vocabulary) Parse(line string) (ParseResult, bool) {
	words := strings.Fields(strings.ToLower(line))
	var (
		res   ParseResult
		found bool
	)
	for i := range words {
		phrase := strings.Join(words[:i+1], " ")
		if cmd, ok := v.Resolve(phrase); ok {
			res = ParseResult{Command: cmd, Phrase: phrase, Target: strings.Join(words[i+1:], " ")}
			found = true
		}
	}
	return res, found
}
