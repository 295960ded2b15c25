package core

// EventKind identifies something that happened during a step.
type EventKind uint8

const (
	EventJump EventKind = iota + 1
	EventJumpPad
	EventSpeedPad
	EventGravityFlip
	EventCrash
	EventFinish
	EventRestart
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventJumpPad:
		return "jump_pad"
	case EventSpeedPad:
		return "speed_pad"
	case EventGravityFlip:
		return "gravity_flip"
	case EventCrash:
		return "crash"
	case EventFinish:
		return "finish"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event records a gameplay event and the player rectangle at the moment it fired.
// Color is the color of the pad involved, zero otherwise.
type Event struct {
	Kind   EventKind
	Player Rect
	Color  Color
}
