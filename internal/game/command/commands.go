// Package command provides the command groups, the phrase vocabulary, and the
// longest-prefix matcher that maps player input onto them.
package command

// Group is the closed set of command semantics the game loop dispatches on.
type Group int

// Command groups. GroupUnknown marks a vocabulary group id with no handler.
const (
	GroupUnknown Group = iota
	GroupExit
	GroupPass
	GroupClear
	GroupDict
	GroupLoc
	GroupInventory
	GroupHide
	GroupThrow
	GroupGo
	GroupExamine
	GroupTalk
	GroupTake
	GroupUse
)

var groupNames = map[Group]string{
	GroupExit:      "exit",
	GroupPass:      "pass",
	GroupClear:     "clear",
	GroupDict:      "dict",
	GroupLoc:       "loc",
	GroupInventory: "inventory",
	GroupHide:      "hide",
	GroupThrow:     "throw",
	GroupGo:        "go",
	GroupExamine:   "examine",
	GroupTalk:      "talk",
	GroupTake:      "take",
	GroupUse:       "use",
}

// ParseGroup maps a group id to its Group.
//
// Postcondition: Returns (GroupUnknown, false) for ids with no handler.
func ParseGroup(id string) (Group, bool) {
	for g, name := range groupNames {
		if name == id {
			return g, true
		}
	}
	return GroupUnknown, false
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}

// Command is one command group and the phrases that invoke it.
type Command struct {
	// Name is the group id as declared in the vocabulary source.
	Name string
	// Group is the resolved semantics, GroupUnknown if Name has no handler.
	Group Group
	// Phrases are the literal inputs, possibly multi-word, that select the
	// command.
	Phrases []string
}

// BuiltinCommands returns the English vocabulary used when no localized
// vocabulary is available.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "exit", Group: GroupExit, Phrases: []string{"exit", "quit"}},
		{Name: "pass", Group: GroupPass, Phrases: []string{"pass", "wait"}},
		{Name: "clear", Group: GroupClear, Phrases: []string{"clear"}},
		{Name: "dict", Group: GroupDict, Phrases: []string{"dict", "help", "commands"}},
		{Name: "loc", Group: GroupLoc, Phrases: []string{"loc", "look", "look around", "where am i"}},
		{Name: "inventory", Group: GroupInventory, Phrases: []string{"inventory", "inv", "i"}},
		{Name: "hide", Group: GroupHide, Phrases: []string{"hide"}},
		{Name: "throw", Group: GroupThrow, Phrases: []string{"throw", "drop"}},
		{Name: "go", Group: GroupGo, Phrases: []string{"go", "walk", "move", "go to"}},
		{Name: "examine", Group: GroupExamine, Phrases: []string{"examine", "inspect", "look at"}},
		{Name: "talk", Group: GroupTalk, Phrases: []string{"talk", "talk to", "speak to"}},
		{Name: "take", Group: GroupTake, Phrases: []string{"take", "grab", "pick up"}},
		{Name: "use", Group: GroupUse, Phrases: []string{"use"}},
	}
}
