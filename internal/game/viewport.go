package game

import "sync"

// viewport tracks the window size reported by ebiten's Layout and tells
// resize listeners about changes.
type viewport struct {
	mu        sync.Mutex
	w, h      int
	listeners map[int]func(w, h int)
	nextID    int
}

func newViewport(w, h int) *viewport {
	return &viewport{w: w, h: h, listeners: map[int]func(w, h int){}}
}

func (v *viewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

func (v *viewport) OnResize(fn func(w, h int)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// resize records a new size and notifies listeners if it changed.
func (v *viewport) resize(w, h int) bool {
	v.mu.Lock()
	if w <= 0 || h <= 0 || (w == v.w && h == v.h) {
		v.mu.Unlock()
		return false
	}
	v.w, v.h = w, h
	fns := make([]func(w, h int), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
	return true
}
