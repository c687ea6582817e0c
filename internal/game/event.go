package game

type EventKind uint8

const (
	LaneActivated EventKind = iota
	PauseToggle
	Restart
	Start
	Quit
)

func (k EventKind) String() string {
	switch k {
	case LaneActivated:
		return "LaneActivated"
	case PauseToggle:
		return "PauseToggle"
	case Restart:
		return "Restart"
	case Start:
		return "Start"
	case Quit:
		return "Quit"
	}
	return "Unknown"
}

// Event is a resolved input. Lane is only meaningful for LaneActivated.
type Event struct {
	Kind EventKind
	Lane int
}

func Activate(lane int) Event {
	return Event{Kind: LaneActivated, Lane: lane}
}
