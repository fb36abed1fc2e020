package notification

import (
	"errors"
	"strings"
	"testing"
)

type call struct {
	title   string
	message string
}

type mockNotifier struct {
	calls []call
	err   error
}

func (m *mockNotifier) notify(title, message string, _ any) error {
	m.calls = append(m.calls, call{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		mockErr     error
		expectError bool
	}{
		{"success", nil, false},
		{"backend failure", errors.New("no dbus"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotifier{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send("Title", "Body")
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 || mock.calls[0] != (call{"Title", "Body"}) {
				t.Errorf("calls = %+v", mock.calls)
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	tests := []struct {
		name    string
		preview string
		want    string
	}{
		{"short", "All done.", "Reply ready: All done."},
		{"first line only", "Line one\nLine two", "Reply ready: Line one"},
		{"long", strings.Repeat("a", 100), "Reply ready: " + strings.Repeat("a", 79) + "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotifier{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := ReplyReady(tt.preview); err != nil {
				t.Fatal(err)
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q", mock.calls[0].title)
			}
			if mock.calls[0].message != tt.want {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.want)
			}
		})
	}
}
