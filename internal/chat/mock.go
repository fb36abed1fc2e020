package chat

import (
	"context"
	"io"
	"strings"
	"time"
)

// DefaultMockDelay paces the offline demo so replies visibly stream.
const DefaultMockDelay = 40 * time.Millisecond

// MockGenerator replies with canned text, one word at a time, so the drive
// can be explored without an API key.
type MockGenerator struct {
	// Delay between words. Zero streams as fast as the reader pulls.
	Delay time.Duration
}

// Stream implements Generator.
func (g *MockGenerator) Stream(ctx context.Context, req Request) (Stream, error) {
	var last string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			last = req.Messages[i].Content
			break
		}
	}
	words := strings.SplitAfter(mockReply(last), " ")
	return &mockStream{ctx: ctx, words: words, delay: g.Delay}, nil
}

func mockReply(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "pdf") || strings.Contains(p, "plan") || strings.Contains(p, "document"):
		return "I found **project-plan.pdf** in your drive. It was modified on 2025-12-25 and is about 1.95 MB. The file is encrypted, but you can open it in the preview panel."
	case strings.Contains(p, "image") || strings.Contains(p, "png") || strings.Contains(p, "dashboard"):
		return "**dashboard.png** is a 1000 KB image captured on 2025-12-26. It looks like a general data dashboard with key metrics at the top."
	case strings.Contains(p, "code") || strings.Contains(p, "tsx") || strings.Contains(p, "explain"):
		return "**index.tsx** is a small React component:\n\n```tsx\nexport function Component() {\n  return (<div>Hello World</div>)\n}\n```\n\nIt renders a single `div` with a greeting."
	case strings.Contains(p, "star"):
		return "You have one starred file: **index.tsx**."
	default:
		return "Uplink stable. I can search your documents, summarize images, or explain code. Try asking about data.json or readme.md."
	}
}

type mockStream struct {
	ctx   context.Context
	words []string
	i     int
	delay time.Duration
}

func (m *mockStream) Recv() (string, error) {
	if m.i >= len(m.words) {
		return "", io.EOF
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-m.ctx.Done():
			return "", m.ctx.Err()
		}
	}
	w := m.words[m.i]
	m.i++
	return w, nil
}

func (m *mockStream) Close() error { return nil }
