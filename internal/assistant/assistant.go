package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// ErrNotConfigured is returned when no API key was provided
var ErrNotConfigured = errors.New("assistant: no API key configured")

// Assistant is a thin request/response wrapper around the OpenAI chat API.
// It only builds prompts from already-computed statistics and chapters; it
// never touches the raw dataset.
type Assistant struct {
	client *openai.Client
	model  string
}

// New creates an assistant. An empty API key yields a disabled assistant
// whose methods return ErrNotConfigured.
func New(apiKey, model string) *Assistant {
	a := &Assistant{model: model}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Enabled reports whether an API key was configured
func (a *Assistant) Enabled() bool {
	return a.client != nil
}

// Ask sends one question with the current window's context and returns the
// complete answer
func (a *Assistant) Ask(ctx context.Context, question string, stats models.WindowStats, chapters []models.Chapter) (string, error) {
	if a.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: a.messages(question, stats, chapters),
	})
	if err != nil {
		return "", fmt.Errorf("failed to call chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assistant: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream sends one question and forwards answer deltas to onDelta as they
// arrive
func (a *Assistant) Stream(ctx context.Context, question string, stats models.WindowStats, chapters []models.Chapter, onDelta func(string) error) error {
	if a.client == nil {
		return ErrNotConfigured
	}

	stream, err := a.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: a.messages(question, stats, chapters),
		Stream:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to open chat completion stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read chat completion stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onDelta(delta); err != nil {
				return err
			}
		}
	}
}

func (a *Assistant) messages(question string, stats models.WindowStats, chapters []models.Chapter) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: buildContext(stats, chapters),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: question,
		},
	}
}

// buildContext summarizes the computed statistics and chapters into the
// system prompt
func buildContext(stats models.WindowStats, chapters []models.Chapter) string {
	var b strings.Builder
	b.WriteString("You are a friendly guide to a person's location history visualization. ")
	b.WriteString("Answer questions about their travels using only the context below. Keep answers short.\n\n")
	fmt.Fprintf(&b, "Selected window: %d places, %d cities, %.0f km traveled, %.0f hours of dwell time.\n",
		stats.Places, stats.Cities, stats.Kilometers, stats.Hours)

	if len(chapters) > 0 {
		b.WriteString("Life chapters:\n")
		for _, c := range chapters {
			fmt.Fprintf(&b, "- %s: %s to %s (%d months, %d visits)\n",
				c.City,
				time.Unix(c.StartTimestamp, 0).UTC().Format("Jan 2006"),
				time.Unix(c.EndTimestamp, 0).UTC().Format("Jan 2006"),
				c.Months, c.VisitCount)
		}
	}
	return b.String()
}
