package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/zhubert/aegis/internal/errors"
)

func sseServer(t *testing.T, chunks []string, seen *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			payload, _ := json.Marshal(map[string]any{
				"id":      "chunk",
				"object":  "chat.completion.chunk",
				"choices": []map[string]any{{"index": 0, "delta": map[string]string{"content": c}}},
			})
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestOpenAIGenerator_Streams(t *testing.T) {
	var seen openai.ChatCompletionRequest
	srv := sseServer(t, []string{"Uplink ", "stable."}, &seen)
	defer srv.Close()

	b := NewBridge(NewOpenAIGenerator("test-key", srv.URL+"/v1"), "openai/gpt-5-mini", "system prompt")
	ch, err := b.Send(context.Background(), "status?")
	if err != nil {
		t.Fatal(err)
	}
	drain(t, b, ch)

	last, ok := b.LastAssistant()
	if !ok || last.Content != "Uplink stable." {
		t.Fatalf("LastAssistant() = %+v, %v (notice %q)", last, ok, b.Notice())
	}

	if seen.Model != "openai/gpt-5-mini" || !seen.Stream {
		t.Errorf("request model=%q stream=%v", seen.Model, seen.Stream)
	}
	if len(seen.Messages) != 2 {
		t.Fatalf("request has %d messages, want system + user", len(seen.Messages))
	}
	if seen.Messages[0].Role != openai.ChatMessageRoleSystem || seen.Messages[0].Content != "system prompt" {
		t.Errorf("first message = %+v", seen.Messages[0])
	}
	if seen.Messages[1].Role != openai.ChatMessageRoleUser || seen.Messages[1].Content != "status?" {
		t.Errorf("second message = %+v", seen.Messages[1])
	}
}

func TestOpenAIGenerator_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json error body", `{"error":{"message":"upstream down","type":"server_error"}}`},
		{"plain body", "gateway exploded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			gen := NewOpenAIGenerator("k", srv.URL+"/v1")
			_, err := gen.Stream(context.Background(), Request{Model: "m", Messages: []Message{newMessage(RoleUser, "hi")}})
			if !errors.Is(err, errors.KindStatus) {
				t.Fatalf("Stream() error = %v, want KindStatus", err)
			}

			b := NewBridge(gen, "m", "sys")
			ch, err := b.Send(context.Background(), "hi")
			if err != nil {
				t.Fatal(err)
			}
			drain(t, b, ch)

			if b.Notice() != NoticeStatus {
				t.Errorf("Notice() = %q, want %q", b.Notice(), NoticeStatus)
			}
			msgs := b.Messages()
			if len(msgs) != 1 || msgs[0].Role != RoleUser {
				t.Errorf("transcript = %+v, want only the user message", msgs)
			}
		})
	}
}

func TestOpenAIGenerator_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := NewBridge(NewOpenAIGenerator("k", url+"/v1"), "m", "sys")
	ch, err := b.Send(context.Background(), "hi")
	if err != nil {
		t.Fatal(err)
	}
	drain(t, b, ch)

	if b.Notice() != NoticeTransport {
		t.Errorf("Notice() = %q, want %q", b.Notice(), NoticeTransport)
	}
	if countRole(b.Messages(), RoleAssistant) != 0 {
		t.Error("no assistant message should be committed")
	}
}
