package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/errors"
)

type blockingGenerator struct{}

func (blockingGenerator) Stream(ctx context.Context, _ chat.Request) (chat.Stream, error) {
	return blockingStream{ctx: ctx}, nil
}

type blockingStream struct{ ctx context.Context }

func (s blockingStream) Recv() (string, error) {
	<-s.ctx.Done()
	return "", io.EOF
}

func (blockingStream) Close() error { return nil }

func newTestSession() *Session {
	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	return New(NewGate("Kunzaw5109"), start, start, func() *chat.Bridge {
		return chat.NewBridge(blockingGenerator{}, "m", "sys")
	})
}

func TestGate_Check(t *testing.T) {
	tests := []struct {
		secret string
		input  string
		want   bool
	}{
		{"Kunzaw5109", "Kunzaw5109", true},
		{"Kunzaw5109", "kunzaw5109", false},
		{"Kunzaw5109", "Kunzaw5109 ", false},
		{"Kunzaw5109", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := NewGate(tt.secret).Check(tt.input); got != tt.want {
			t.Errorf("Gate(%q).Check(%q) = %v, want %v", tt.secret, tt.input, got, tt.want)
		}
	}
}

func TestSession_StartsLocked(t *testing.T) {
	s := newTestSession()
	if s.Authenticated || s.LoginFailed || s.Chat != nil {
		t.Errorf("new session = %+v, want locked with no chat", s)
	}
	if s.ID == "" {
		t.Error("session needs an id")
	}
}

func TestSession_LoginFailureThenSuccess(t *testing.T) {
	s := newTestSession()

	err := s.Login("wrong")
	if !errors.Is(err, errors.KindAuth) {
		t.Errorf("Login(wrong) error = %v, want KindAuth", err)
	}
	if s.Authenticated || !s.LoginFailed {
		t.Errorf("after failure Authenticated=%v LoginFailed=%v", s.Authenticated, s.LoginFailed)
	}

	// No lockout: the right code still works.
	if err := s.Login("Kunzaw5109"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.Authenticated || s.LoginFailed || s.Chat == nil {
		t.Errorf("after success Authenticated=%v LoginFailed=%v Chat=%v", s.Authenticated, s.LoginFailed, s.Chat)
	}
}

func TestSession_SessionsAreIndependent(t *testing.T) {
	a, b := newTestSession(), newTestSession()
	if err := a.Login("Kunzaw5109"); err != nil {
		t.Fatal(err)
	}
	if b.Authenticated {
		t.Error("authenticating one session leaked into another")
	}
}

func TestSession_LogoutCancelsStream(t *testing.T) {
	s := newTestSession()
	if err := s.Login("Kunzaw5109"); err != nil {
		t.Fatal(err)
	}
	bridge := s.Chat
	ch, err := bridge.Send(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}

	s.Logout()

	if s.Authenticated || s.Chat != nil {
		t.Error("Logout should lock and drop the chat")
	}
	if bridge.Streaming() {
		t.Error("Logout should cancel the in-flight send")
	}
	select {
	case <-drainClosed(ch):
	case <-time.After(2 * time.Second):
		t.Fatal("stream goroutine did not exit after logout")
	}
}

func drainClosed(ch <-chan chat.Event) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range ch {
		}
		close(done)
	}()
	return done
}

func TestSession_ClearLoginError(t *testing.T) {
	s := newTestSession()
	_ = s.Login("nope")
	s.ClearLoginError()
	if s.LoginFailed {
		t.Error("ClearLoginError() did not clear the flag")
	}
}
