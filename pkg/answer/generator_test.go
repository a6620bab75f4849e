package answer

import (
	"context"
	"errors"
	"testing"

	"legal-chat-be/internal/entity"
	"legal-chat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	response string
	err      error
	history  []llm.Message
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.history = history
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestGenerate_BuildsSystemHistoryAndQueryMessages(t *testing.T) {
	provider := &fakeProvider{response: "The Theft Act 1968 defines theft in section 1."}
	generator := NewGenerator(provider)

	docs := []*entity.Document{
		{Title: "Theft Act 1968", DocumentType: "legislation", ReferenceNumber: "1968 c. 60", Content: "A person is guilty of theft if..."},
	}
	history := []llm.Message{
		{Role: "user", Content: "What is theft?"},
		{Role: "assistant", Content: "Theft is dishonest appropriation."},
	}

	result, err := generator.Generate(context.Background(), "Which section defines it?", docs, history)

	require.NoError(t, err)
	assert.Equal(t, "The Theft Act 1968 defines theft in section 1.", result)

	require.Len(t, provider.history, 4)
	assert.Equal(t, "system", provider.history[0].Role)
	assert.Equal(t, "user", provider.history[1].Role)
	assert.Equal(t, "assistant", provider.history[2].Role)

	last := provider.history[3]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, `"Which section defines it?"`)
	assert.Contains(t, last.Content, "Document: Theft Act 1968")
	assert.Contains(t, last.Content, "Reference: 1968 c. 60")
	assert.Contains(t, last.Content, "A person is guilty of theft if...")
}

func TestGenerate_MissingOptionalFieldsRenderAsNA(t *testing.T) {
	provider := &fakeProvider{response: "answer"}
	generator := NewGenerator(provider)

	docs := []*entity.Document{
		{Title: "Internal Guideline", DocumentType: "guideline", Content: "..."},
	}

	_, err := generator.Generate(context.Background(), "q", docs, nil)

	require.NoError(t, err)
	last := provider.history[len(provider.history)-1]
	assert.Contains(t, last.Content, "Reference: N/A")
	assert.Contains(t, last.Content, "Jurisdiction: N/A")
	assert.NotContains(t, last.Content, "Summary:")
}

func TestGenerate_PropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream timeout")}
	generator := NewGenerator(provider)

	_, err := generator.Generate(context.Background(), "q", nil, nil)
	assert.Error(t, err)
}

func TestGenerate_EmptyCompletionIsAnError(t *testing.T) {
	provider := &fakeProvider{response: "   \n"}
	generator := NewGenerator(provider)

	_, err := generator.Generate(context.Background(), "q", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
