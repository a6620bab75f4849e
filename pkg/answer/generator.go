package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legal-chat-be/internal/constant"
	"legal-chat-be/internal/entity"
	"legal-chat-be/pkg/llm"
)

// ErrEmptyCompletion is returned when the model produces no usable text.
var ErrEmptyCompletion = errors.New("empty completion from model")

// Generator synthesizes a grounded answer from the selected documents and
// the running conversation.
type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{
		provider: provider,
	}
}

func (g *Generator) Generate(ctx context.Context, query string, docs []*entity.Document, history []llm.Message) (string, error) {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.AnswerSystemPrompt,
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: buildQueryPrompt(query, docs),
	})

	raw, err := g.provider.Chat(ctx, messages,
		llm.WithTemperature(constant.AnswerTemperature),
		llm.WithMaxTokens(constant.AnswerMaxTokens),
	)
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", ErrEmptyCompletion
	}
	return answer, nil
}

func buildQueryPrompt(query string, docs []*entity.Document) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Based on the following legal documents, please answer this question: %q\n\n", query))
	sb.WriteString("Available Documents:\n")

	for _, doc := range docs {
		sb.WriteString(fmt.Sprintf("\nDocument: %s\n", doc.Title))
		sb.WriteString(fmt.Sprintf("Type: %s\n", doc.DocumentType))
		sb.WriteString(fmt.Sprintf("Reference: %s\n", orNA(doc.ReferenceNumber)))
		sb.WriteString(fmt.Sprintf("Jurisdiction: %s\n", orNA(doc.Jurisdiction)))
		if doc.Summary != "" {
			sb.WriteString(fmt.Sprintf("Summary: %s\n", doc.Summary))
		}
		sb.WriteString(fmt.Sprintf("\nContent:\n%s\n---\n", doc.Content))
	}

	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
