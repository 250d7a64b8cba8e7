package site

// Accordion tracks which FAQ entry is expanded. At most one entry is open;
// Open is -1 when all are collapsed.
type Accordion struct {
	Open int
}

// NewAccordion returns a fully collapsed accordion.
func NewAccordion() Accordion {
	return Accordion{Open: -1}
}

// Toggle opens entry i, or collapses it when it is already open.
func (a *Accordion) Toggle(i int) {
	if a.Open == i {
		a.Open = -1
		return
	}
	a.Open = i
}

// IsOpen reports whether entry i is expanded.
func (a Accordion) IsOpen(i int) bool {
	return a.Open == i
}
