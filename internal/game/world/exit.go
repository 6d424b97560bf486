package world

// Exit connects two areas. The same Exit and TransitionRequirement are
// registered under a direction key in both areas, so fulfilling the
// requirement from either side unlocks both.
type Exit struct {
	// Direction is the label given by the area that declared the exit first.
	Direction string
	// Requirement gates passage in both directions.
	Requirement *TransitionRequirement

	areas [2]*Area
}

// NewExit creates an exit between from and to guarded by req. A nil req is
// replaced by an empty requirement.
func NewExit(direction string, from, to *Area, req *TransitionRequirement) *Exit {
	if req == nil {
		req = NewTransitionRequirement()
	}
	return &Exit{Direction: direction, Requirement: req, areas: [2]*Area{from, to}}
}

// Dest returns the area on the other side of the exit from current.
func (e *Exit) Dest(current *Area) *Area {
	if current == e.areas[1] {
		return e.areas[0]
	}
	return e.areas[1]
}

// Passthrough returns the destination if the requirement is met.
//
// Postcondition: Returns (dest, true) iff Requirement.IsMet().
func (e *Exit) Passthrough(current *Area) (*Area, bool) {
	if !e.Requirement.IsMet() {
		return nil, false
	}
	return e.Dest(current), true
}
