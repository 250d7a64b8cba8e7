package carousel

// State is the observable carousel state.
type State struct {
	Active    int       `json:"active"`
	Direction Direction `json:"direction"`
}

// Normalize maps any integer onto [0, count) using mathematical modulo, so
// negative inputs wrap from the end. count must be positive.
func Normalize(index, count int) int {
	return ((index % count) + count) % count
}

// Store owns a State for a list of count items.
type Store struct {
	count int
	state State
}

// NewStore returns a store positioned on the first item, moving forward.
func NewStore(count int) (*Store, error) {
	if count <= 0 {
		return nil, ErrNoItems
	}
	return &Store{
		count: count,
		state: State{Active: 0, Direction: Forward},
	}, nil
}

// Len returns the number of items the store indexes.
func (s *Store) Len() int {
	return s.count
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Set replaces the state in one step. next may be out of range; it is
// normalized before it is stored.
func (s *Store) Set(next int, dir Direction) State {
	s.state = State{
		Active:    Normalize(next, s.count),
		Direction: DirectionOf(int(dir)),
	}
	return s.state
}
