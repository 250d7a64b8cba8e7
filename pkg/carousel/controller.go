package carousel

// Controller maps the navigation surfaces onto Store.Set. Every operation
// reads the state once, before writing, so the direction always describes
// the move that produced the new index.
type Controller struct {
	store *Store
	items []Item
}

// NewController returns a controller writing to store. items is used only
// for label lookups and must be the list the store was sized for.
func NewController(store *Store, items []Item) *Controller {
	return &Controller{store: store, items: items}
}

// Advance moves one step. Positive steps go forward, anything else goes
// backward; magnitudes above one are ignored.
func (c *Controller) Advance(step Direction) State {
	dir := DirectionOf(int(step))
	prev := c.store.State()
	return c.store.Set(prev.Active+dir.Int(), dir)
}

// Next is Advance(Forward).
func (c *Controller) Next() State {
	return c.Advance(Forward)
}

// Prev is Advance(Backward).
func (c *Controller) Prev() State {
	return c.Advance(Backward)
}

// Select jumps to target. The target is normalized first, then compared with
// the active index: a later item moves forward, an earlier or equal one moves
// backward.
//
// Selecting the active item reports Backward. Nothing visible depends on it;
// the value is kept stable so renderers and tests can rely on it.
func (c *Controller) Select(target int) State {
	prev := c.store.State()
	next := Normalize(target, c.store.Len())
	dir := Backward
	if next > prev.Active {
		dir = Forward
	}
	return c.store.Set(next, dir)
}

// SelectLabel selects the first item carrying label. It reports false and
// leaves the state untouched when no item matches.
func (c *Controller) SelectLabel(label string) (State, bool) {
	i, ok := indexOfLabel(c.items, label)
	if !ok {
		return c.store.State(), false
	}
	return c.Select(i), true
}
