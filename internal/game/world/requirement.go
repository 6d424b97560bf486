package world

import "slices"

// TransitionRequirement is the unlock condition of an Exit: a set of required
// item ids, each independently satisfiable. Requirements are monotonic; a
// satisfied condition never reverts.
type TransitionRequirement struct {
	// Unfulfilled is shown when the player tries to pass while unmet.
	Unfulfilled string
	// Fulfilled is announced when an item satisfies a condition or the
	// requirement is force-fulfilled.
	Fulfilled string
	// HiddenUntilFulfilled hides the exit from listings and movement until met.
	HiddenUntilFulfilled bool

	order      []string
	conditions map[string]bool
}

// NewTransitionRequirement returns a requirement with no conditions, which is
// met by construction.
func NewTransitionRequirement() *TransitionRequirement {
	return &TransitionRequirement{conditions: make(map[string]bool)}
}

// AddCondition tracks itemID as an unsatisfied condition. Adding an id that is
// already tracked leaves its state unchanged.
func (r *TransitionRequirement) AddCondition(itemID string) {
	if _, ok := r.conditions[itemID]; ok {
		return
	}
	r.conditions[itemID] = false
	r.order = append(r.order, itemID)
}

// IsMet reports whether every condition is satisfied. A requirement with no
// conditions is always met.
func (r *TransitionRequirement) IsMet() bool {
	for _, ok := range r.conditions {
		if !ok {
			return false
		}
	}
	return true
}

// Check satisfies the condition for item if it is tracked.
//
// Postcondition: Returns true iff item.ID is a tracked condition; at most one
// flag changes.
func (r *TransitionRequirement) Check(item *Item) bool {
	if _, ok := r.conditions[item.ID]; !ok {
		return false
	}
	r.conditions[item.ID] = true
	return true
}

// ForceFulfill satisfies every condition unconditionally.
func (r *TransitionRequirement) ForceFulfill() {
	for id := range r.conditions {
		r.conditions[id] = true
	}
}

// Visible reports whether the exit guarded by r should be shown and usable.
func (r *TransitionRequirement) Visible() bool {
	return r.IsMet() || !r.HiddenUntilFulfilled
}

// Conditions returns the tracked item ids in declaration order.
func (r *TransitionRequirement) Conditions() []string {
	return slices.Clone(r.order)
}

// Satisfied reports whether the condition for itemID is satisfied.
func (r *TransitionRequirement) Satisfied(itemID string) bool {
	return r.conditions[itemID]
}
