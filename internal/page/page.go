package page

import "time"

// Page ties the peripheral behaviors to one scroll position
type Page struct {
	ScrollY   float64
	ViewportH float64
	Height    float64 // document height

	Nav      Nav
	Menu     Menu
	Reveal   *Reveal
	Headline *TypeWriter
	scroll   *SmoothScroll
}

// New creates a page. The document height is the bottom of the last section.
func New(sections []Section, cards []*Card, headline string, typeSpeed time.Duration, fps int) *Page {
	p := &Page{
		Nav:      Nav{Sections: sections},
		Reveal:   NewReveal(cards...),
		Headline: NewTypeWriter(headline, typeSpeed),
		scroll:   NewSmoothScroll(fps),
	}
	for _, s := range sections {
		p.Height = max(p.Height, s.Top+s.Height)
	}
	return p
}

// Start runs the initial scroll check and starts the headline
func (p *Page) Start(viewportH float64) {
	p.ViewportH = viewportH
	p.Headline.Start()
	p.onScroll()
}

// ScrollBy moves the page by dy unless the mobile menu locks it.
// User scrolling cancels a running anchor animation.
func (p *Page) ScrollBy(dy float64) {
	if p.Menu.BodyLocked() || dy == 0 {
		return
	}
	p.scroll.Cancel()
	p.setScroll(p.ScrollY + dy)
}

// Follow handles a click on an in-page link: the menu closes and the page
// animates to the section. Unknown anchors are ignored.
func (p *Page) Follow(anchor string) bool {
	s, ok := p.Nav.Lookup(anchor)
	if !ok {
		return false
	}
	p.Menu.Close()
	p.scroll.To(p.ScrollY, p.clamp(s.Top))
	return true
}

// Resize sets the viewport height
func (p *Page) Resize(viewportH float64) {
	p.ViewportH = viewportH
	p.setScroll(p.ScrollY)
}

// Update advances animations by dt
func (p *Page) Update(dt time.Duration) {
	if p.scroll.Active() {
		p.setScroll(p.scroll.Step())
	}
	p.Headline.Advance(dt)
	p.Reveal.Advance(dt)
}

// Scrolling reports whether an anchor animation is running
func (p *Page) Scrolling() bool {
	return p.scroll.Active()
}

func (p *Page) setScroll(y float64) {
	p.ScrollY = p.clamp(y)
	p.onScroll()
}

func (p *Page) clamp(y float64) float64 {
	return max(0, min(y, max(0, p.Height-p.ViewportH)))
}

func (p *Page) onScroll() {
	p.Nav.OnScroll(p.ScrollY)
	p.Reveal.Observe(p.ScrollY, p.ViewportH)
}
