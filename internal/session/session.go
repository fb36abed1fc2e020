package session

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/errors"
	"github.com/zhubert/aegis/internal/logger"
)

// Gate checks an entered access code against a shared secret.
type Gate struct {
	secret []byte
}

// NewGate returns a gate for secret.
func NewGate(secret string) Gate {
	return Gate{secret: []byte(secret)}
}

// Check reports whether input equals the secret.
func (g Gate) Check(input string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(input), g.secret) == 1
}

// Session is one run of the drive from unlock to lock.
type Session struct {
	ID            string
	StartedAt     time.Time
	Reference     time.Time
	Authenticated bool
	LoginFailed   bool

	// Chat is nil while locked.
	Chat *chat.Bridge

	gate    Gate
	newChat func() *chat.Bridge
}

// New returns a locked session. reference is the anchored "now" for the
// Recent filter; newChat builds the bridge used after each login.
func New(gate Gate, startedAt, reference time.Time, newChat func() *chat.Bridge) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
		Reference: reference,
		gate:      gate,
		newChat:   newChat,
	}
}

// Login unlocks the session when input matches the gate's secret.
func (s *Session) Login(input string) error {
	if !s.gate.Check(input) {
		s.LoginFailed = true
		logger.WithComponent("session").Warn("login rejected", "session", s.ID)
		return errors.AccessDenied()
	}
	s.Authenticated = true
	s.LoginFailed = false
	if s.newChat != nil {
		s.Chat = s.newChat()
	}
	logger.WithComponent("session").Info("login accepted", "session", s.ID)
	return nil
}

// Logout locks the session, canceling any streaming reply and dropping the
// transcript.
func (s *Session) Logout() {
	if s.Chat != nil {
		s.Chat.Cancel()
		s.Chat = nil
	}
	s.Authenticated = false
	s.LoginFailed = false
	logger.WithComponent("session").Info("logged out", "session", s.ID)
}

// ClearLoginError hides the access card error, e.g. once the user edits the
// code again.
func (s *Session) ClearLoginError() { s.LoginFailed = false }
