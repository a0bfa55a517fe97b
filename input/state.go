package input

import "sync"

// holdFrames is how many simulation ticks a keypress counts as held.
// Terminals report key presses but never releases, so a held physical key
// is observed as an auto-repeat stream; keeping each press alive for a few
// ticks bridges the repeat gaps into a continuous hold.
const holdFrames = 6

// State tracks which logical controls are currently held. The terminal
// poll goroutine writes via Press while the tick loop reads, so access
// is mutex-guarded.
type State struct {
	mu   sync.Mutex
	held [keyCount]int // remaining hold ticks per key
}

// NewState creates an empty input state
func NewState() *State {
	return &State{}
}

// Press marks a key as held for the next holdFrames ticks
func (s *State) Press(k Key) {
	s.mu.Lock()
	s.held[k] = holdFrames
	s.mu.Unlock()
}

// Held reports whether a key is currently held
func (s *State) Held(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[k] > 0
}

// Consume clears a key immediately. Used for edge-triggered controls
// such as pause, so a held key does not re-toggle every frame.
func (s *State) Consume(k Key) {
	s.mu.Lock()
	s.held[k] = 0
	s.mu.Unlock()
}

// Tick ages every hold window by one frame. Called once per simulation tick.
func (s *State) Tick() {
	s.mu.Lock()
	for k := range s.held {
		if s.held[k] > 0 {
			s.held[k]--
		}
	}
	s.mu.Unlock()
}
