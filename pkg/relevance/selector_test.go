package relevance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func makeDocument(title, summary, content string, tags ...string) *entity.Document {
	return &entity.Document{
		Id:      uuid.New(),
		Title:   title,
		Summary: summary,
		Content: content,
		Tags:    tags,
	}
}

func TestSelect_ResolvesLiteralDocumentIds(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "Offences of theft", "..."),
		makeDocument("Companies Act 2006", "Company law", "..."),
		makeDocument("Fraud Act 2006", "Fraud offences", "..."),
	}

	provider := &fakeProvider{
		response: fmt.Sprintf(`{"documentIds":["%s","%s"],"reasoning":"direct matches"}`, docs[2].Id, docs[0].Id),
	}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "fraud and theft offences", docs)

	require.False(t, fallback)

	require.Len(t, selected, 2)
	assert.Equal(t, docs[2].Id, selected[0].Id)
	assert.Equal(t, docs[0].Id, selected[1].Id)
}

func TestSelect_ResolvesPositionalIds(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "", "..."),
		makeDocument("Companies Act 2006", "", "..."),
		makeDocument("Fraud Act 2006", "", "..."),
	}

	// Models sometimes echo the prompt numbering instead of the real IDs.
	provider := &fakeProvider{response: `{"documentIds":["1","3"],"reasoning":"positions"}`}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "offences", docs)
	require.False(t, fallback)

	require.Len(t, selected, 2)
	assert.Equal(t, docs[0].Id, selected[0].Id)
	assert.Equal(t, docs[2].Id, selected[1].Id)
}

func TestSelect_DeduplicatesReturnedIds(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "", "..."),
		makeDocument("Fraud Act 2006", "", "..."),
	}

	provider := &fakeProvider{response: `{"documentIds":["2","2","1"],"reasoning":"dup"}`}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "offences", docs)
	require.False(t, fallback)

	require.Len(t, selected, 2)
	assert.Equal(t, docs[1].Id, selected[0].Id)
	assert.Equal(t, docs[0].Id, selected[1].Id)
}

func TestSelect_FallsBackToKeywordsOnProviderError(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "Offences of theft and stolen goods", "An Act about theft"),
		makeDocument("Companies Act 2006", "Company formation", "An Act about companies"),
	}

	provider := &fakeProvider{err: errors.New("upstream timeout")}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "theft", docs)
	expected := ScoreByKeywords("theft", docs, 5)

	assert.True(t, fallback)

	require.Equal(t, len(expected), len(selected))
	for i := range expected {
		assert.Equal(t, expected[i].Id, selected[i].Id)
	}
}

func TestSelect_FallsBackOnMalformedJSON(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "Offences of theft", "An Act about theft"),
	}

	provider := &fakeProvider{response: `the relevant documents are: Theft Act`}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "theft", docs)
	assert.True(t, fallback)

	require.Len(t, selected, 1)
	assert.Equal(t, docs[0].Id, selected[0].Id)
}

func TestSelect_FallsBackWhenNoIdsResolve(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "Offences of theft", "An Act about theft"),
	}

	provider := &fakeProvider{response: `{"documentIds":["not-a-real-id"],"reasoning":"?"}`}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "theft", docs)
	assert.True(t, fallback)

	require.Len(t, selected, 1)
	assert.Equal(t, docs[0].Id, selected[0].Id)
}

func TestSelect_StripsCodeFences(t *testing.T) {
	docs := []*entity.Document{
		makeDocument("Theft Act 1968", "", "..."),
	}

	provider := &fakeProvider{
		response: "```json\n" + fmt.Sprintf(`{"documentIds":["%s"],"reasoning":"fenced"}`, docs[0].Id) + "\n```",
	}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, _ := selector.Select(context.Background(), "theft", docs)

	require.Len(t, selected, 1)
}

func TestSelect_CapsSelectionAtMax(t *testing.T) {
	var docs []*entity.Document
	ids := ""
	for i := 0; i < 8; i++ {
		doc := makeDocument(fmt.Sprintf("Act %d", i), "", "...")
		docs = append(docs, doc)
		if i > 0 {
			ids += ","
		}
		ids += fmt.Sprintf("%q", doc.Id)
	}

	provider := &fakeProvider{response: fmt.Sprintf(`{"documentIds":[%s],"reasoning":"all"}`, ids)}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, _ := selector.Select(context.Background(), "acts", docs)

	assert.Len(t, selected, 5)
}

func TestSelect_EmptyCandidatesSkipsLLM(t *testing.T) {
	provider := &fakeProvider{response: `{"documentIds":[]}`}
	selector := NewSelector(provider, logger.NewNopLogger())

	selected, fallback := selector.Select(context.Background(), "anything", nil)

	assert.False(t, fallback)

	assert.Empty(t, selected)
	assert.Zero(t, provider.calls)
}

func TestScoreByKeywords_RanksAndDropsZeroScores(t *testing.T) {
	theft := makeDocument("Theft Act 1968", "Offences of theft and stolen goods", "theft theft theft", "theft", "criminal")
	companies := makeDocument("Companies Act 2006", "Company formation and governance", "companies and directors")
	unrelated := makeDocument("Fisheries Order 1999", "Quotas", "fishing quotas")

	result := ScoreByKeywords("theft offences", []*entity.Document{unrelated, companies, theft}, 5)

	require.Len(t, result, 1)
	assert.Equal(t, theft.Id, result[0].Id)
}

func TestScoreByKeywords_TitleMatchBoostsScore(t *testing.T) {
	exact := makeDocument("Data Protection Act 2018", "", "data protection rules")
	partial := makeDocument("Privacy Regulations", "data protection act guidance notes", "data protection act commentary")

	result := ScoreByKeywords("Data Protection Act", []*entity.Document{partial, exact}, 5)

	require.NotEmpty(t, result)
	assert.Equal(t, exact.Id, result[0].Id)
}

func TestScoreByKeywords_CapsResults(t *testing.T) {
	var docs []*entity.Document
	for i := 0; i < 8; i++ {
		docs = append(docs, makeDocument(fmt.Sprintf("Tax Act %d", i), "tax", "tax provisions"))
	}

	result := ScoreByKeywords("tax", docs, 5)

	assert.Len(t, result, 5)
}
