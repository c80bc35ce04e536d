package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/internal/app"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/surface"
)

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateWindow(); err != nil {
		return err
	}
	bg, err := parseBackground(cfg.Background)
	if err != nil {
		return err
	}

	f := newField(cfg)
	game := app.NewGame(f, cfg.BuildPage(), cfg.TPS, bg)
	defer game.Handle().Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Printf("starting %dx%d with %d particles", cfg.Width, cfg.Height, len(f.Particles))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	win := host.NewWindow(float64(cfg.Width), float64(cfg.Height))
	h := host.Attach(win, newField(cfg))
	defer h.Close()
	if pointerX >= 0 && pointerY >= 0 {
		win.PointerMove(pointerX, pointerY)
	}

	loop := host.NewLoop(h)
	for i := 1; i < frames; i++ {
		loop.Tick()
	}
	svg := surface.NewSVG(float64(cfg.Width), float64(cfg.Height), cfg.Background)
	if frames > 0 {
		loop.Frame(svg)
	} else {
		h.Field().Render(svg)
	}

	var out io.Writer = os.Stdout
	if outFile != "-" {
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	if _, err := svg.WriteTo(out); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	if outFile != "-" {
		log.Printf("wrote frame %d to %s", loop.Frames(), outFile)
	}
	return nil
}

func benchFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	win := host.NewWindow(float64(cfg.Width), float64(cfg.Height))
	h := host.Attach(win, newField(cfg))
	defer h.Close()
	win.PointerMove(float64(cfg.Width)/2, float64(cfg.Height)/2)

	loop := host.NewLoop(h)
	rec := &surface.Recorder{}
	var lines int
	start := time.Now()
	for i := 0; i < frames; i++ {
		loop.Frame(rec)
		lines += len(rec.Lines)
	}
	elapsed := time.Since(start)

	n := len(h.Field().Particles)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SIZE\t%dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "PARTICLES\t%d\n", n)
	fmt.Fprintf(w, "PAIR CHECKS/FRAME\t%d\n", n*(n-1)/2)
	fmt.Fprintf(w, "SEARCH\t%s\n", searchMode(n))
	if frames > 0 {
		fmt.Fprintf(w, "LINES/FRAME\t%.1f\n", float64(lines)/float64(frames))
		fmt.Fprintf(w, "TIME/FRAME\t%v\n", elapsed/time.Duration(frames))
	}
	fmt.Fprintf(w, "TOTAL\t%v\n", elapsed)
	return w.Flush()
}

func searchMode(n int) string {
	if n <= field.BruteForceLimit {
		return "all pairs"
	}
	return "spatial bins"
}

func parseBackground(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
