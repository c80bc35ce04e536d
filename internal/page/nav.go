package page

// Section is a scroll target of the page
type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
}

// Anchor returns the link target of the section, e.g. "#about"
func (s Section) Anchor() string {
	return "#" + s.ID
}

const (
	ScrolledOffset = 50.0  // navbar switches style past this scroll position
	ActiveOffset   = 100.0 // scroll position is probed this far below the top
)

// Nav tracks the navbar state
type Nav struct {
	Sections []Section
	Scrolled bool
	Active   string // anchor of the highlighted link, empty for none
}

// OnScroll updates the navbar for the given scroll position.
// When no section contains the probe point the previous highlight is kept.
func (n *Nav) OnScroll(scrollY float64) {
	n.Scrolled = scrollY > ScrolledOffset

	probe := scrollY + ActiveOffset
	for _, s := range n.Sections {
		if probe >= s.Top && probe < s.Top+s.Height {
			n.Active = s.Anchor()
		}
	}
}

// Lookup finds a section by anchor
func (n *Nav) Lookup(anchor string) (Section, bool) {
	for _, s := range n.Sections {
		if s.Anchor() == anchor {
			return s, true
		}
	}
	return Section{}, false
}

// Menu is the mobile menu. While open the page body does not scroll.
type Menu struct {
	Open bool
}

// Toggle flips the menu
func (m *Menu) Toggle() {
	m.Open = !m.Open
}

// Close shuts the menu
func (m *Menu) Close() {
	m.Open = false
}

// BodyLocked reports whether page scrolling is disabled
func (m *Menu) BodyLocked() bool {
	return m.Open
}
