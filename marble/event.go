package marble

// Event is one input delivered to a Controller: Tick, KeyEvent or PointerEvent.
type Event interface {
	isEvent()
}

// KeyKind distinguishes key presses from releases.
type KeyKind uint8

const (
	KeyPressed KeyKind = iota
	KeyReleased
)

func (k KeyKind) String() string {
	switch k {
	case KeyPressed:
		return "PRESSED"
	case KeyReleased:
		return "RELEASED"
	default:
		return "UNKNOWN"
	}
}

// PointerKind distinguishes the primary click from every other pointer action.
type PointerKind uint8

const (
	PrimaryClick PointerKind = iota
	PointerOther
)

func (k PointerKind) String() string {
	switch k {
	case PrimaryClick:
		return "PRIMARY_CLICK"
	case PointerOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Tick is the per-frame advance.
type Tick struct{}

// KeyEvent is a keyboard action on a named key.
type KeyEvent struct {
	Kind KeyKind
	Key  string
}

// PointerEvent is a pointer action at a pixel coordinate.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Point returns the event's coordinate.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

func (Tick) isEvent()         {}
func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}

// EventName returns a short lower-case label for the event's variant.
func EventName(ev Event) string {
	switch ev.(type) {
	case Tick:
		return "tick"
	case KeyEvent:
		return "key"
	case PointerEvent:
		return "pointer"
	default:
		return "unknown"
	}
}
