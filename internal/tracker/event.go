package tracker

import "fmt"

type EventKind int

const (
	EventEdit EventKind = iota
	EventCompositionStart
	EventCompositionEnd
)

func (k EventKind) String() string {
	switch k {
	case EventEdit:
		return "edit"
	case EventCompositionStart:
		return "composition-start"
	case EventCompositionEnd:
		return "composition-end"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one notification from the input widget. Buffer and Cursor are
// only meaningful for edits; Cursor is a rune offset into Buffer.
type Event struct {
	Kind   EventKind
	Buffer string
	Cursor int
}

func Start() Event { return Event{Kind: EventCompositionStart} }

func End() Event { return Event{Kind: EventCompositionEnd} }

func Edit(buffer string, cursor int) Event {
	return Event{Kind: EventEdit, Buffer: buffer, Cursor: cursor}
}

// Position is a (line, column) pair, both zero based.
type Position struct {
	Line   int
	Column int
}

// State is what a tracker reports after every event. Hint is where the next
// expected character indicator belongs; it is hidden while composing.
type State struct {
	Settled     int
	Hint        Position
	HintVisible bool
	Composing   bool
}
