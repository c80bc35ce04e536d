package app

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/page"
	"github.com/olivierh59500/particle-field-go/internal/surface"
)

// Overlay layout
const (
	NavHeight   = 24
	WheelScroll = 40.0
	charWidth   = 6 // debug font glyph width
)

var (
	navBackground = color.NRGBA{R: 10, G: 10, B: 18, A: 200}
	sectionKeys   = []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
)

// Game hosts a particle field and the page overlay in an ebiten window
type Game struct {
	window *host.Window
	handle *host.Handle
	loop   *host.Loop
	page   *page.Page

	background color.Color
	tick       time.Duration
	outW, outH int

	tracking       bool // a first cursor sample was taken
	prevMX, prevMY int
}

// NewGame attaches f to a window of the field's size
func NewGame(f *field.Field, p *page.Page, tps int, background color.Color) *Game {
	win := host.NewWindow(f.Width, f.Height)
	h := host.Attach(win, f)
	g := &Game{
		window:     win,
		handle:     h,
		loop:       host.NewLoop(h),
		page:       p,
		background: background,
		tick:       time.Second / time.Duration(tps),
		outW:       int(f.Width),
		outH:       int(f.Height),
	}
	p.Start(f.Height)
	return g
}

// Handle returns the handle of the attached field
func (g *Game) Handle() *host.Handle {
	return g.handle
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()

	if !g.loop.Tick() {
		return ebiten.Termination
	}
	g.page.Update(g.tick)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.handle.Field().Render(surface.NewScreen(screen, g.background))
	g.drawPage(screen)
}

// Layout follows the window size; a change is delivered as a resize notification
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.window.Resize(float64(outsideWidth), float64(outsideHeight))
		g.page.Resize(float64(outsideHeight))
		log.Printf("resized to %dx%d, %d particles", outsideWidth, outsideHeight, len(g.handle.Field().Particles))
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.handle.Close()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.page.Menu.Toggle()
	}
	for i, s := range g.page.Nav.Sections {
		if i >= len(sectionKeys) {
			break
		}
		if inpututil.IsKeyJustPressed(sectionKeys[i]) {
			g.page.Follow(s.Anchor())
		}
	}

	_, wheelY := ebiten.Wheel()
	g.page.ScrollBy(-wheelY * WheelScroll)

	g.cursorAt(ebiten.CursorPosition())
}

// cursorAt reports a pointer move when the cursor differs from the last sample.
// The first sample only sets the baseline so the field starts without pointer influence.
func (g *Game) cursorAt(mx, my int) {
	if g.tracking && (mx != g.prevMX || my != g.prevMY) {
		g.window.PointerMove(float64(mx), float64(my))
	}
	g.tracking = true
	g.prevMX, g.prevMY = mx, my
}

func (g *Game) drawPage(screen *ebiten.Image) {
	p := g.page
	w := float32(screen.Bounds().Dx())

	// Cards in document space
	for _, c := range p.Reveal.Cards {
		if !c.Revealed {
			continue
		}
		y := int(c.Top - p.ScrollY)
		if y < NavHeight || y > screen.Bounds().Dy() {
			continue
		}
		ebitenutil.DebugPrintAt(screen, "[ "+c.Title+" ]", 40, y)
	}

	// Headline sits in the first section
	if y := int(p.ViewportH/2 - p.ScrollY); y > NavHeight {
		text := p.Headline.Text()
		ebitenutil.DebugPrintAt(screen, text, (int(w)-len([]rune(text))*charWidth)/2, y)
	}

	if p.Nav.Scrolled {
		vector.DrawFilledRect(screen, 0, 0, w, NavHeight, navBackground, false)
	}
	var links []string
	for i, s := range p.Nav.Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title)
		if s.Anchor() == p.Nav.Active {
			label = "<" + label + ">"
		}
		links = append(links, label)
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(links, "  "), 8, 4)

	if p.Menu.Open {
		for i, s := range p.Nav.Sections {
			ebitenutil.DebugPrintAt(screen, s.Title, int(w)-120, NavHeight+8+i*16)
		}
	}
	if g.loop.Paused() {
		ebitenutil.DebugPrintAt(screen, "paused", int(w)-48, 4)
	}
}
