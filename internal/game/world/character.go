package world

// Character is a player, NPC, or enemy. Every character has a location facet
// (Body); the variant types carry their own payload.
type Character interface {
	Name() string
	Area() *Area
	body() *Body
}

// Body is the identity and location facet shared by every character variant.
type Body struct {
	name string
	area *Area
}

// Name returns the display name.
func (b *Body) Name() string { return b.name }

// Area returns the area the character occupies, or nil before placement.
func (b *Body) Area() *Area { return b.area }

func (b *Body) body() *Body { return b }

// Move relocates c to dst, keeping both area rosters consistent.
//
// Precondition: c and dst must be non-nil.
// Postcondition: c.Area() == dst; dst's roster contains c exactly once and no
// other area's roster contains c.
func Move(c Character, dst *Area) {
	b := c.body()
	if b.area == dst {
		return
	}
	if b.area != nil {
		b.area.removeCharacter(c)
	}
	b.area = dst
	dst.characters = append(dst.characters, c)
}

// NPC is a friendly character with a single dialog line.
type NPC struct {
	Body
	// Dialog is printed when the player talks to the NPC.
	Dialog string
}

// NewNPC creates an unplaced NPC.
func NewNPC(name, dialog string) *NPC {
	return &NPC{Body: Body{name: name}, Dialog: dialog}
}

// Enemy is a hostile character that roams and attacks the player.
type Enemy struct {
	Body
	// Damage is dealt in genuinely dark areas.
	Damage int
	// DamageWithLight is dealt everywhere else.
	DamageWithLight int
}

// NewEnemy creates an unplaced enemy.
func NewEnemy(name string, damage, damageWithLight int) *Enemy {
	return &Enemy{Body: Body{name: name}, Damage: damage, DamageWithLight: damageWithLight}
}
