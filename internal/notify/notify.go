// Package notify is the transient user-facing message channel: a single
// slot with last-write-wins semantics. Announcing while an undelivered
// message is pending replaces it; consumers can never stack messages.
// The overwrite is intentional and part of the contract.
package notify

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Message is a transient notification. Severity only affects presentation.
type Message struct {
	Text     string
	Severity Severity
}

type Broadcaster struct {
	ch chan Message
}

func New() *Broadcaster {
	return &Broadcaster{ch: make(chan Message, 1)}
}

// Announce replaces any pending message with this one.
func (b *Broadcaster) Announce(text string, severity Severity) {
	m := Message{Text: text, Severity: severity}
	for {
		select {
		case b.ch <- m:
			return
		default:
		}
		// Slot full: drop the stale message and try again.
		select {
		case <-b.ch:
		default:
		}
	}
}

// Next returns the pending message, if any, without blocking.
func (b *Broadcaster) Next() (Message, bool) {
	select {
	case m := <-b.ch:
		return m, true
	default:
		return Message{}, false
	}
}

// C exposes the slot for select-based consumers.
func (b *Broadcaster) C() <-chan Message { return b.ch }
