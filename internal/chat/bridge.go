package chat

import (
	"context"
	"io"
	"strings"

	"github.com/zhubert/aegis/internal/errors"
	"github.com/zhubert/aegis/internal/logger"
)

// WelcomeMessage is the greeting shown above an empty transcript. It is
// display-only and never sent to the generator.
const WelcomeMessage = "Hello! I'm your AI assistant. I can help you manage and analyze your cloud drive files. Ask me to search for documents, summarize images, or explain code!"

// Notices shown outside the transcript when a send fails.
const (
	NoticeStatus    = "CORE_LINK_FAILURE: n8n.sys not responding"
	NoticeTransport = "CORE_LINK_FAILURE: n8n.sys connection refused"
)

// ErrSendInProgress is returned by Send while a reply is still streaming.
var ErrSendInProgress = errors.E(errors.Op("chat.Send"), errors.KindBusy, "a reply is already streaming")

const eventBuffer = 64

// Bridge owns one transcript and at most one in-flight send. Send, Apply and
// Cancel must be called from a single goroutine (the UI loop); the stream
// itself is read on a goroutine that only talks through the event channel.
type Bridge struct {
	gen    Generator
	model  string
	system string

	messages []Message
	pending  strings.Builder
	notice   string

	seq      uint64
	inFlight bool
	cancel   context.CancelFunc
}

// NewBridge returns a bridge with an empty transcript.
func NewBridge(gen Generator, model, system string) *Bridge {
	return &Bridge{
		gen:    gen,
		model:  model,
		system: system,
	}
}

// SetModel changes the model used by the next send.
func (b *Bridge) SetModel(model string) { b.model = model }

// Model returns the model used for sends.
func (b *Bridge) Model() string { return b.model }

// Send appends text as a user message and starts streaming the reply. The
// returned channel yields events until it is closed; feed each one to Apply.
func (b *Bridge) Send(ctx context.Context, text string) (<-chan Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.E(errors.Op("chat.Send"), errors.KindInvalid, "message is empty")
	}
	if b.inFlight {
		return nil, ErrSendInProgress
	}

	b.messages = append(b.messages, newMessage(RoleUser, text))
	b.notice = ""
	b.pending.Reset()
	b.seq++
	b.inFlight = true

	req := Request{
		Model:    b.model,
		System:   b.system,
		Messages: b.Messages(),
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	ch := make(chan Event, eventBuffer)
	go stream(ctx, b.gen, req, b.seq, ch)

	logger.WithComponent("chat").Info("send started", "seq", b.seq, "messages", len(req.Messages))
	return ch, nil
}

func stream(ctx context.Context, gen Generator, req Request, seq uint64, ch chan<- Event) {
	defer close(ch)

	emit := func(ev Event) bool {
		ev.Seq = seq
		select {
		case ch <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	s, err := gen.Stream(ctx, req)
	if err != nil {
		emit(Event{Kind: EventFailed, Err: classify(ctx, err)})
		return
	}
	defer s.Close()

	for {
		text, err := s.Recv()
		if err == io.EOF {
			emit(Event{Kind: EventDone})
			return
		}
		if err != nil {
			emit(Event{Kind: EventFailed, Err: classify(ctx, err)})
			return
		}
		if text == "" {
			continue
		}
		if !emit(Event{Kind: EventDelta, Text: text}) {
			return
		}
	}
}

// classify keeps generator kinds and treats anything unlabeled as transport.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.ChatCanceled(err)
	}
	switch errors.GetKind(err) {
	case errors.KindStatus, errors.KindNetwork, errors.KindCanceled:
		return err
	}
	return errors.ChatTransport(err)
}

// Apply folds one event into the transcript and reports whether anything
// visible changed. Events from an earlier send are dropped.
func (b *Bridge) Apply(ev Event) bool {
	if !b.inFlight || ev.Seq != b.seq {
		return false
	}

	switch ev.Kind {
	case EventDelta:
		b.pending.WriteString(ev.Text)
	case EventDone:
		if b.pending.Len() > 0 {
			b.messages = append(b.messages, newMessage(RoleAssistant, b.pending.String()))
		}
		b.finish()
		logger.WithComponent("chat").Info("reply committed", "seq", ev.Seq)
	case EventFailed:
		b.notice = noticeFor(ev.Err)
		b.finish()
		logger.WithComponent("chat").Warn("send failed", "seq", ev.Seq, "error", ev.Err)
	}
	return true
}

func noticeFor(err error) string {
	switch errors.GetKind(err) {
	case errors.KindCanceled:
		return ""
	case errors.KindStatus:
		return NoticeStatus
	default:
		return NoticeTransport
	}
}

func (b *Bridge) finish() {
	b.pending.Reset()
	b.inFlight = false
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// Cancel aborts the in-flight send, discarding any partial reply without a
// notice. It reports whether there was anything to cancel.
func (b *Bridge) Cancel() bool {
	if !b.inFlight {
		return false
	}
	b.finish()
	logger.WithComponent("chat").Info("send canceled", "seq", b.seq)
	return true
}

// Messages returns a copy of the committed transcript.
func (b *Bridge) Messages() []Message {
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// Pending returns the partial reply and whether a send is in flight.
func (b *Bridge) Pending() (string, bool) {
	return b.pending.String(), b.inFlight
}

// Streaming reports whether a send is in flight.
func (b *Bridge) Streaming() bool { return b.inFlight }

// Notice returns the current failure notice, or "".
func (b *Bridge) Notice() string { return b.notice }

// DismissNotice clears the failure notice.
func (b *Bridge) DismissNotice() { b.notice = "" }

// LastAssistant returns the most recent committed assistant message.
func (b *Bridge) LastAssistant() (Message, bool) {
	for i := len(b.messages) - 1; i >= 0; i-- {
		if b.messages[i].Role == RoleAssistant {
			return b.messages[i], true
		}
	}
	return Message{}, false
}
