package world

import "github.com/cory-johannsen/nightfall/internal/game/registry"

// Item is a world object. An Item is shared by reference: the world's master
// registry always holds it, and at most one Container (an area floor or the
// player's inventory) holds it at a time.
type Item struct {
	// ID uniquely identifies the item.
	ID string
	// Description is shown by examine.
	Description string
	// InventoryItem reports whether the player may take the item.
	InventoryItem bool
	// LightSource marks items that recharge the player's lantern when used.
	LightSource bool
	// LightCount is the number of turns of light a light source provides.
	LightCount int
	// Hidden items are omitted from area listings.
	Hidden bool

	name   string
	holder *Container
}

// NewItem creates an item that is not yet held by any container.
func NewItem(id, name, description string) *Item {
	return &Item{ID: id, name: name, Description: description, InventoryItem: true}
}

// Name returns the display name.
func (i *Item) Name() string { return i.name }

// Holder returns the container currently holding the item, or nil.
func (i *Item) Holder() *Container { return i.holder }

// Container is an item collection that owns the back-reference of every item
// it holds.
//
// Invariant: for every item in the container, item.Holder() == container.
type Container struct {
	label string
	items *registry.Store[*Item]
}

// NewContainer creates an empty container. label is used only for logging.
func NewContainer(label string) *Container {
	return &Container{label: label, items: registry.New[*Item]()}
}

// Label returns the container's diagnostic label.
func (c *Container) Label() string { return c.label }

// Has reports whether the item with the given id is present.
func (c *Container) Has(id string) bool { return c.items.Has(id) }

// ByName resolves a held item by display name, case-insensitively.
func (c *Container) ByName(name string) (*Item, bool) { return c.items.GetByName(name) }

// Get returns the held item with the given id.
func (c *Container) Get(id string) (*Item, bool) { return c.items.GetSafe(id) }

// Items returns the held items in the order they arrived.
func (c *Container) Items() []*Item { return c.items.Values() }

// Len returns the number of held items.
func (c *Container) Len() int { return c.items.Len() }

// Transfer moves item into dst, removing it from its previous container.
//
// Precondition: item and dst must be non-nil.
// Postcondition: item.Holder() == dst and no other container holds item.
func Transfer(item *Item, dst *Container) {
	if item.holder == dst {
		return
	}
	Detach(item)
	dst.items.Add(item.ID, item)
	item.holder = dst
}

// Detach removes item from whichever container holds it.
//
// Postcondition: item.Holder() == nil.
func Detach(item *Item) {
	if item.holder == nil {
		return
	}
	_ = item.holder.items.Remove(item.ID)
	item.holder = nil
}
