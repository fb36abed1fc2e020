package chat

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/zhubert/aegis/internal/errors"
	"github.com/zhubert/aegis/internal/logger"
)

// OpenAIGenerator streams chat completions from any OpenAI-compatible
// endpoint.
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator builds a client for baseURL. An empty baseURL keeps the
// library default.
func NewOpenAIGenerator(apiKey, baseURL string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(cfg)}
}

// Stream implements Generator.
func (g *OpenAIGenerator) Stream(ctx context.Context, req Request) (Stream, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	logger.WithComponent("openai").Debug("creating stream", "model", req.Model, "messages", len(messages))

	s, err := g.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, classifyOpenAI(err)
	}
	return &openAIStream{s: s}, nil
}

type openAIStream struct {
	s *openai.ChatCompletionStream
}

func (o *openAIStream) Recv() (string, error) {
	resp, err := o.s.Recv()
	if stderrors.Is(err, io.EOF) {
		return "", io.EOF
	}
	if err != nil {
		return "", classifyOpenAI(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Delta.Content, nil
}

func (o *openAIStream) Close() error {
	return o.s.Close()
}

// classifyOpenAI maps API and HTTP status failures to KindStatus and
// everything else to KindNetwork.
func classifyOpenAI(err error) error {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		return errors.ChatStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return errors.ChatStatus(reqErr.HTTPStatusCode, err)
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.ChatCanceled(err)
	}
	return errors.ChatTransport(err)
}
