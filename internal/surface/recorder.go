package surface

import "image/color"

// Circle is a recorded FillCircle call
type Circle struct {
	X, Y, R float64
	Color   color.Color
}

// Line is a recorded StrokeLine call
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.Color
}

// Recorder keeps the calls of the last frame. Clear starts a new frame.
type Recorder struct {
	Clears  int
	Circles []Circle
	Lines   []Line
}

// Clear counts the frame and drops the calls recorded so far
func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

// FillCircle records a disc
func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: rad, Color: c})
}

// StrokeLine records a line segment
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}
