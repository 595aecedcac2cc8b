// Package llm defines the completion-service boundary used by the extractor
// and the langchaingo-backed providers that implement it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of an exchange with the completion service.
type Message struct {
	Role Role
	Text string
}

// Completer maps an exchange history to the model's next reply.
type Completer interface {
	Complete(ctx context.Context, history []Message) (string, error)
}

var ErrEmptyReply = errors.New("completion returned no choices")

// Model adapts a langchaingo model to Completer.
type Model struct {
	model       llms.Model
	temperature float64
}

func NewModel(model llms.Model, temperature float64) *Model {
	return &Model{model: model, temperature: temperature}
}

func (m *Model) Complete(ctx context.Context, history []Message) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("completion: empty history")
	}
	content := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		content = append(content, llms.TextParts(chatType(msg.Role), msg.Text))
	}

	resp, err := m.model.GenerateContent(ctx, content, llms.WithTemperature(m.temperature))
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Content, nil
}

func chatType(role Role) llms.ChatMessageType {
	if role == RoleModel {
		return llms.ChatMessageTypeAI
	}
	return llms.ChatMessageTypeHuman
}

// NormalizeProvider lower-cases and trims a provider name.
func NormalizeProvider(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
