// Package content defines the records of the world document (areas, items,
// characters, events, vocabulary) and loads them from YAML or JSON files.
package content

// Document is the top-level world document.
type Document struct {
	General                General                 `yaml:"general"`
	Areas                  []Area                  `yaml:"areas"`
	Events                 []Event                 `yaml:"events"`
	Groups                 []Group                 `yaml:"groups"`
	TransitionRequirements []TransitionRequirement `yaml:"transitionRequirements"`
	Items                  []Item                  `yaml:"items"`
	NPCs                   []NPC                   `yaml:"npcs"`
	Enemies                []Enemy                 `yaml:"enemies"`
	Commands               []Command               `yaml:"commands"`
}

// General holds player-wide settings.
type General struct {
	Player PlayerSettings `yaml:"player"`
}

// PlayerSettings configures the player character.
type PlayerSettings struct {
	StartingState StartingState `yaml:"startingState"`
	// HidingSafety is the percentage chance (0-100) that hiding prevents an attack.
	HidingSafety int `yaml:"hidingSafety"`
}

// StartingState places the player at session start.
type StartingState struct {
	Area string `yaml:"r_area"`
}

// Requirement references a TransitionRequirement from an exit.
type Requirement struct {
	TransitionRequirement string `yaml:"r_transitionRequirement"`
}

// Exit is one direction listed by an area.
type Exit struct {
	Direction   string       `yaml:"c_direction"`
	Pointer     string       `yaml:"r_pointer"`
	Requirement *Requirement `yaml:"requirement,omitempty"`
}

// Area is a location node.
type Area struct {
	ID               string   `yaml:"id"`
	Groups           []string `yaml:"r_groups"`
	NameKey          string   `yaml:"t_name"`
	EnterDescription string   `yaml:"t_enterDescription"`
	RequireLight     bool     `yaml:"requireLight"`
	Hidable          bool     `yaml:"isHidable"`
	Exits            []Exit   `yaml:"exits"`
	Items            []string `yaml:"items"`
}

// Group classifies areas and bounds enemy spawning.
type Group struct {
	ID               string `yaml:"id"`
	NameKey          string `yaml:"t_name"`
	EnterDescription string `yaml:"t_enterDescription"`
	ExitDescription  string `yaml:"t_exitDescription"`
}

// FulfillCondition lists the item ids that unlock a requirement.
type FulfillCondition struct {
	Items []string `yaml:"r_items"`
}

// TransitionRequirement gates an exit.
type TransitionRequirement struct {
	ID                    string           `yaml:"id"`
	FulfillCondition      FulfillCondition `yaml:"fulfillCondition"`
	Unfulfilled           string           `yaml:"t_unfulfilled_description"`
	Fulfilled             string           `yaml:"t_fulfilled_description"`
	HiddenWhenUnfulfilled bool             `yaml:"isHiddenWhenUnfulfilled"`
}

// Item is an object that can lie in an area or be carried.
type Item struct {
	ID             string `yaml:"id"`
	NameKey        string `yaml:"t_name"`
	DescriptionKey string `yaml:"t_description"`
	InventoryItem  bool   `yaml:"isInventoryItem"`
	LightItem      bool   `yaml:"isLightItem"`
	LightCount     int    `yaml:"lightCount"`
	Hidden         bool   `yaml:"isHidden"`
}

// NPC is a friendly character with a single dialog line.
type NPC struct {
	ID        string `yaml:"id"`
	NameKey   string `yaml:"t_name"`
	DialogKey string `yaml:"t_dialog"`
	Area      string `yaml:"r_area"`
}

// Enemy is a hostile character that roams the world.
type Enemy struct {
	ID              string `yaml:"id"`
	Damage          int    `yaml:"damage"`
	DamageWithLight int    `yaml:"damageWithLight"`
	RoamingGroup    string `yaml:"r_roaming_group"`
}

// Info is a {type, data} pair used by event triggers, conditions and affects.
type Info struct {
	Type string `yaml:"type"`
	Data string `yaml:"data"`
}

// Event is a scripted reaction to a player action.
type Event struct {
	ID                   string `yaml:"id"`
	Trigger              Info   `yaml:"trigger"`
	Once                 bool   `yaml:"once"`
	AdditionalConditions []Info `yaml:"additional_conditions"`
	Affects              []Info `yaml:"affects"`
}

// Command maps a command group to a translated vocabulary list.
type Command struct {
	ID             string `yaml:"id"`
	VocabularyList string `yaml:"t_vocabularyList"`
}
