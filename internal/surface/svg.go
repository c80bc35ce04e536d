package surface

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// SVG records a frame as an SVG document for headless export
type SVG struct {
	Width, Height float64
	Background    string // CSS color, empty for none

	body strings.Builder
}

// NewSVG creates an SVG surface of the given size
func NewSVG(width, height float64, background string) *SVG {
	return &SVG{Width: width, Height: height, Background: background}
}

// Clear starts a new frame
func (s *SVG) Clear() {
	s.body.Reset()
}

// FillCircle adds a circle element
func (s *SVG) FillCircle(x, y, r float64, c color.Color) {
	rgb, a := svgColor(c)
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, x, y, r, rgb, a)
}

// StrokeLine adds a line element
func (s *SVG) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	rgb, a := svgColor(c)
	fmt.Fprintf(&s.body, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>
`, x1, y1, x2, y2, rgb, a, width)
}

// String returns the complete document for the current frame
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height))
	if s.Background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, s.Background))
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTo writes the document to w
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func svgColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}
