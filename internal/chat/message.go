// Package chat streams assistant replies into an append-only transcript.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one committed transcript entry.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

func newMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Request is what a Generator receives: the fixed system prompt and the
// whole transcript so far, oldest first.
type Request struct {
	Model    string
	System   string
	Messages []Message
}

// Stream yields reply text increments. Recv returns io.EOF once the reply is
// complete.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Generator produces a streamed reply for a request.
type Generator interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}
