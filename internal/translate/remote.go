package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// RemoteSource translates single words through the OpenAI chat API. All
// transport and auth failures surface as errors, never as a panic past
// the resolver, and a circuit breaker stops hammering the API once it
// fails repeatedly within a run.
type RemoteSource struct {
	apiKey  string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewRemoteSource creates a remote translation source. An empty API key
// yields a source that reports every word as unknown.
func NewRemoteSource(apiKey string) *RemoteSource {
	return &RemoteSource{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-translate",
			Timeout: 60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Name returns the source identifier.
func (s *RemoteSource) Name() string { return "openai" }

// Lookup requests a single-word translation. The circuit breaker rejects
// calls outright while the API is considered down; that rejection is
// reported as an error so the resolver falls through to the next source.
func (s *RemoteSource) Lookup(ctx context.Context, word string) (Entry, bool, error) {
	if s.apiKey == "" {
		return Entry{}, false, nil
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.translateWord(ctx, word)
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("remote translation of %q: %w", word, err)
	}

	translation := result.(string)
	if translation == "" {
		return Entry{}, false, nil
	}
	return Entry{Source: s.Name(), Variants: []string{translation}}, true, nil
}

func (s *RemoteSource) translateWord(ctx context.Context, word string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the German word '%s' to English. Respond with only the English translation, nothing else.", word),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
