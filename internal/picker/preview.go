package picker

import "sync/atomic"

// Preview holds the most recent sample produced by the polling loop.
//
// Store replaces the whole sample at once; Load never observes a partially
// written value. No history is kept.
type Preview struct {
	current atomic.Pointer[ColorSample]
}

// Store replaces the current sample.
func (p *Preview) Store(s ColorSample) {
	p.current.Store(&s)
}

// Load returns the current sample. The boolean is false until the first
// successful Store.
func (p *Preview) Load() (ColorSample, bool) {
	s := p.current.Load()
	if s == nil {
		return ColorSample{}, false
	}
	return *s, true
}
