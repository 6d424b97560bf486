package world

// MaxHealth is the player's starting and maximum health.
const MaxHealth = 100

// Player is the character controlled by the user.
type Player struct {
	Body
	// Lantern is the number of remaining turns of light.
	Lantern int
	// Hiding is set by the hide command and cleared each turn.
	Hiding bool
	// HidingSafety is the percentage chance (0-100) that hiding prevents damage.
	HidingSafety int
	// Inventory holds carried items.
	Inventory *Container

	health int
}

// NewPlayer creates an unplaced player at full health.
func NewPlayer(name string, hidingSafety int) *Player {
	return &Player{
		Body:         Body{name: name},
		HidingSafety: hidingSafety,
		Inventory:    NewContainer("inventory"),
		health:       MaxHealth,
	}
}

// HealthChange describes the result of a health mutation.
type HealthChange struct {
	Previous int
	Current  int
	// Died is true only when this mutation took health from above zero to zero.
	Died bool
}

// Health returns the current health in [0, MaxHealth].
func (p *Player) Health() int { return p.health }

// SetHealth clamps v to [0, MaxHealth] and stores it.
//
// Postcondition: Health() >= 0; Died is reported exactly once, at the
// zero-crossing.
func (p *Player) SetHealth(v int) HealthChange {
	prev := p.health
	p.health = max(0, min(v, MaxHealth))
	return HealthChange{Previous: prev, Current: p.health, Died: prev > 0 && p.health == 0}
}

// ApplyDamage subtracts amount from health.
func (p *Player) ApplyDamage(amount int) HealthChange {
	return p.SetHealth(p.health - amount)
}

// HasLight reports whether the lantern has charge left.
func (p *Player) HasLight() bool { return p.Lantern > 0 }

// DepleteLantern consumes one turn of light.
//
// Postcondition: Returns true iff this call took the lantern from 1 to 0.
func (p *Player) DepleteLantern() bool {
	switch {
	case p.Lantern == 1:
		p.Lantern = 0
		return true
	case p.Lantern > 1:
		p.Lantern--
	}
	return false
}

// DamageFrom returns the damage enemy deals to the player in the player's
// current area. Full damage applies only in an area that requires light while
// the lantern is out; everywhere else the light-adjusted damage applies.
func (p *Player) DamageFrom(enemy *Enemy) int {
	if p.area != nil && p.area.RequireLight && !p.HasLight() {
		return enemy.Damage
	}
	return enemy.DamageWithLight
}
