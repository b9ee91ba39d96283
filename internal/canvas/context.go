// Package canvas provides an HTML-canvas style drawing context on top of
// fogleman/gg, sized to follow a window.
package canvas

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/blossom-greeting/internal/bloom"
)

// Context adapts a gg.Context to bloom.Canvas.
type Context struct {
	dc *gg.Context
}

// NewContext wraps dc. The caller keeps ownership of dc.
func NewContext(dc *gg.Context) *Context {
	return &Context{dc: dc}
}

// Clear resets every pixel to transparent.
func (c *Context) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

func (c *Context) Save()    { c.dc.Push() }
func (c *Context) Restore() { c.dc.Pop() }

func (c *Context) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Context) Rotate(angle float64)   { c.dc.Rotate(angle) }

func (c *Context) BeginPath() { c.dc.ClearPath() }

func (c *Context) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	c.dc.QuadraticTo(cx, cy, x, y)
}

func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Ellipse adds a closed ellipse centred at (x, y) rotated by rotation
// radians. Points are transformed as they are added, so popping the
// temporary transform keeps the shape in place.
func (c *Context) Ellipse(x, y, rx, ry, rotation float64) {
	c.dc.Push()
	c.dc.Translate(x, y)
	c.dc.Rotate(rotation)
	c.dc.DrawEllipse(0, 0, rx, ry)
	c.dc.Pop()
}

func (c *Context) Circle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
}

func (c *Context) SetFillColor(col color.Color) {
	c.dc.SetFillStyle(gg.NewSolidPattern(col))
}

func (c *Context) SetStrokeColor(col color.Color) {
	c.dc.SetStrokeStyle(gg.NewSolidPattern(col))
}

// SetFillGradient installs a radial gradient given in user space. gg
// evaluates patterns in device space, so the centres go through the current
// transform first; the renderer never scales, so radii carry over as-is.
func (c *Context) SetFillGradient(g bloom.RadialGradient) {
	x0, y0 := c.dc.TransformPoint(g.X0, g.Y0)
	x1, y1 := c.dc.TransformPoint(g.X1, g.Y1)
	grad := gg.NewRadialGradient(x0, y0, g.R0, x1, y1, g.R1)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, stop.Color)
	}
	c.dc.SetFillStyle(grad)
}

func (c *Context) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }

func (c *Context) SetRoundCap(round bool) {
	if round {
		c.dc.SetLineCap(gg.LineCapRound)
		return
	}
	c.dc.SetLineCap(gg.LineCapButt)
}

// Fill and Stroke keep the path so the same shape can be filled then
// outlined.
func (c *Context) Fill()   { c.dc.FillPreserve() }
func (c *Context) Stroke() { c.dc.StrokePreserve() }
