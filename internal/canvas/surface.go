package canvas

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/blossom-greeting/internal/bloom"
)

// Surface is a resizable drawing area. SetSize only records the new
// dimensions; the backing image is reallocated the next time Canvas is
// called, which happens on the tick goroutine.
type Surface struct {
	mu   sync.Mutex
	w, h int

	dc  *gg.Context
	ctx *Context
}

func NewSurface(w, h int) *Surface {
	return &Surface{w: w, h: h}
}

func (s *Surface) Size() (int, int) {
	if s == nil {
		return 0, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *Surface) SetSize(w, h int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.w, s.h = w, h
	s.mu.Unlock()
}

// Canvas returns a drawing context matching the current size, or nil when
// the surface has no area.
func (s *Surface) Canvas() bloom.Canvas {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w <= 0 || s.h <= 0 {
		return nil
	}
	if s.dc == nil || s.dc.Width() != s.w || s.dc.Height() != s.h {
		s.dc = gg.NewContext(s.w, s.h)
		s.ctx = NewContext(s.dc)
	}
	return s.ctx
}

// Image returns the last rendered frame, or nil before the first one.
func (s *Surface) Image() image.Image {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

func (s *Surface) SavePNG(path string) error {
	s.mu.Lock()
	dc := s.dc
	s.mu.Unlock()
	if dc == nil {
		return fmt.Errorf("save %s: nothing rendered yet", path)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
