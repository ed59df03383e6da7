package picker

import "sync"

// LogEventKind identifies the mutation that produced a LogEvent.
type LogEventKind string

const (
	LogAppended LogEventKind = "appended"
	LogCleared  LogEventKind = "cleared"
)

// LogEvent describes a change to a SampleLog.
type LogEvent struct {
	Kind   LogEventKind `json:"kind"`
	Length int          `json:"length"` // log length after the change
	Sample *ColorSample `json:"sample,omitempty"` // set for LogAppended
}

// SampleLog is an ordered, append-only list of captured samples.
//
// Insertion order is iteration order. Identical samples are kept as separate
// entries and the log never evicts anything; Clear is the only way to shrink
// it.
//
// SampleLog is safe for concurrent use. Subscribers are notified after each
// mutation, outside the log's lock, so they may read the log from the
// callback.
type SampleLog struct {
	mu      sync.RWMutex
	samples []ColorSample

	subs subscribers[LogEvent]
}

// NewSampleLog creates an empty log.
func NewSampleLog() *SampleLog {
	return &SampleLog{}
}

// Append adds s to the end of the log.
func (l *SampleLog) Append(s ColorSample) {
	l.mu.Lock()
	l.samples = append(l.samples, s)
	n := len(l.samples)
	l.mu.Unlock()

	l.notify(LogEvent{Kind: LogAppended, Length: n, Sample: &s})
}

// Clear removes every sample.
func (l *SampleLog) Clear() {
	l.mu.Lock()
	l.samples = nil
	l.mu.Unlock()

	l.notify(LogEvent{Kind: LogCleared, Length: 0})
}

// Samples returns a copy of the log in insertion order. The returned slice is
// not affected by later mutations.
func (l *SampleLog) Samples() []ColorSample {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]ColorSample, len(l.samples))
	copy(out, l.samples)
	return out
}

// Len returns the number of samples in the log.
func (l *SampleLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.samples)
}

// Last returns the most recently appended sample, or false if the log is empty.
func (l *SampleLog) Last() (ColorSample, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.samples) == 0 {
		return ColorSample{}, false
	}
	return l.samples[len(l.samples)-1], true
}

// Subscribe registers fn to be called after every mutation, in subscription
// order. The returned function removes the subscription; calling it more than
// once is harmless.
func (l *SampleLog) Subscribe(fn func(LogEvent)) (cancel func()) {
	return l.subs.add(fn)
}

func (l *SampleLog) notify(ev LogEvent) {
	l.subs.notify(ev)
}
