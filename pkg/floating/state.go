package floating

// State is the measurement lifecycle of a session. Transitions happen only
// on measurement-update calls, never spontaneously, and only move forward:
// once both rects have been measured the session stays Ready.
type State int

const (
	// StateUnmeasured means neither the anchor nor the floating element has
	// been measured yet.
	StateUnmeasured State = iota

	// StatePartiallyMeasured means exactly one of the two has been measured.
	StatePartiallyMeasured

	// StateReady means both have been measured at least once and results
	// are being published.
	StateReady
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUnmeasured:
		return "unmeasured"
	case StatePartiallyMeasured:
		return "partially-measured"
	case StateReady:
		return "ready"
	}
	return "unknown"
}
