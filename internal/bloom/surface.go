package bloom

import "image/color"

// Canvas is the 2D immediate-mode drawing context the renderer draws on.
// Fill and Stroke keep the current path so a shape can be filled and then
// outlined, the way an HTML canvas behaves.
type Canvas interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	BeginPath()
	MoveTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Ellipse(x, y, rx, ry, rotation float64)
	Circle(x, y, r float64)

	SetFillColor(c color.Color)
	SetFillGradient(g RadialGradient)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetRoundCap(round bool)
	Fill()
	Stroke()
}

// RadialGradient is expressed in the canvas's current user space.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

type ColorStop struct {
	Offset float64
	Color  color.Color
}

// Surface is a drawable area with mutable dimensions. Canvas returns nil
// when no drawing context can be acquired.
type Surface interface {
	Size() (w, h int)
	SetSize(w, h int)
	Canvas() Canvas
}

// Viewport is the window the surface is sized to follow.
type Viewport interface {
	Size() (w, h int)
	// OnResize registers fn and returns a function that detaches it.
	OnResize(fn func(w, h int)) (detach func())
}

// Rand is the random source used for particle spawning.
type Rand interface {
	Float64() float64
}
