package chat

// EventKind discriminates Event.
type EventKind int

const (
	EventDelta EventKind = iota
	EventDone
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventDone:
		return "done"
	case EventFailed:
		return "failed"
	default:
		return "delta"
	}
}

// Event is one step of an in-flight send. Seq ties it to the send that
// produced it so late events from a canceled send are ignored.
type Event struct {
	Seq  uint64
	Kind EventKind
	Text string
	Err  error
}
