package loop

import (
	"sync"
)

// Handoff synchronizes the two phases of a frame: a logic phase, usually run
// on its own goroutine, that mutates entity data, and a render phase, run on
// the thread owning the GPU context, that uploads it and draws.
//
// Phases strictly alternate, starting with the logic phase. Data mutated in
// one phase can be read in the next one without any other synchronization.
//
type Handoff struct {
	logic  chan struct{}
	render chan struct{}
	quit   chan struct{}
	once   sync.Once
}

// NewHandoff returns a new Handoff, ready for the first logic phase.
//
func NewHandoff() *Handoff {
	h := &Handoff{
		logic:  make(chan struct{}, 1),
		render: make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}
	h.render <- struct{}{}
	return h
}

// Logic waits for the previous render phase to complete then runs fn. It
// returns false without calling fn if the handoff is closed.
//
func (h *Handoff) Logic(fn func()) bool {
	select {
	case <-h.render:
	case <-h.quit:
		return false
	}
	fn()
	h.logic <- struct{}{}
	return true
}

// Render waits for the previous logic phase to complete then runs fn. It
// returns false without calling fn if the handoff is closed.
//
func (h *Handoff) Render(fn func()) bool {
	select {
	case <-h.logic:
	case <-h.quit:
		return false
	}
	fn()
	h.render <- struct{}{}
	return true
}

// TryRender is like Render but returns false immediately if the logic phase
// is not complete.
//
func (h *Handoff) TryRender(fn func()) bool {
	select {
	case <-h.logic:
	default:
		return false
	}
	fn()
	h.render <- struct{}{}
	return true
}

// Close unblocks pending and future calls to Logic and Render.
//
func (h *Handoff) Close() {
	h.once.Do(func() { close(h.quit) })
}
