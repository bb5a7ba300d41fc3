package carousel

// EventKind identifies a controller notification.
type EventKind int

const (
	// EventActiveChanged fires when a different index faces the viewer.
	EventActiveChanged EventKind = iota
	// EventEnterPlay fires when the plate enter animation starts.
	EventEnterPlay
	// EventEnterStop fires when the plate enter animation finishes.
	EventEnterStop
)

func (k EventKind) String() string {
	switch k {
	case EventActiveChanged:
		return "active-changed"
	case EventEnterPlay:
		return "enter-play"
	case EventEnterStop:
		return "enter-stop"
	default:
		return "unknown"
	}
}

// Source is the input that caused a change.
type Source int

const (
	SourceNone Source = iota
	SourceDrag
	SourceWheel
	SourceButton
	SourceItems
)

func (s Source) String() string {
	switch s {
	case SourceDrag:
		return "drag"
	case SourceWheel:
		return "wheel"
	case SourceButton:
		return "button"
	case SourceItems:
		return "items"
	default:
		return "none"
	}
}

// Event is delivered to subscribers.
type Event struct {
	Kind   EventKind
	Source Source
	Index  int
	Item   Item
}

type listener struct {
	id uint32
	fn func(Event)
}

// Subscription is a registered listener. Close removes it; closing twice
// is harmless.
type Subscription struct {
	id uint32
	c  *Controller
}

// Close unregisters the listener so it no longer fires.
func (s *Subscription) Close() {
	if s == nil || s.c == nil {
		return
	}
	ls := s.c.listeners
	for i := range ls {
		if ls[i].id == s.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = listener{}
			s.c.listeners = ls[:len(ls)-1]
			break
		}
	}
	s.c = nil
}
