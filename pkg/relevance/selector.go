package relevance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"legal-chat-be/internal/constant"
	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/pkg/llm"
)

// Selector picks the documents most relevant to a query. It asks the LLM
// first and falls back to keyword scoring when the model fails or returns
// nothing usable.
type Selector struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewSelector(provider llm.LLMProvider, log logger.ILogger) *Selector {
	return &Selector{
		provider: provider,
		log:      log,
	}
}

type documentSelection struct {
	DocumentIds []string `json:"documentIds"`
	Reasoning   string   `json:"reasoning"`
}

// resolver maps the model's returned identifiers onto candidate documents.
// Resolvers run in order; the first non-empty result wins.
type resolver func(ids []string, docs []*entity.Document) []*entity.Document

var resolvers = []resolver{
	resolveByID,
	resolveByPosition,
}

// Select returns the chosen documents and whether the keyword fallback was
// used instead of the model's selection.
func (s *Selector) Select(ctx context.Context, query string, docs []*entity.Document) ([]*entity.Document, bool) {
	if len(docs) == 0 {
		return nil, false
	}

	selection, err := s.analyzeQuery(ctx, query, docs)
	if err != nil {
		s.log.Warn("relevance", "llm selection failed, falling back to keyword scoring", map[string]interface{}{
			"error": err.Error(),
		})
		return ScoreByKeywords(query, docs, constant.MaxRelevantDocuments), true
	}

	var selected []*entity.Document
	for _, resolve := range resolvers {
		if selected = resolve(selection.DocumentIds, docs); len(selected) > 0 {
			break
		}
	}

	if len(selected) == 0 {
		return ScoreByKeywords(query, docs, constant.MaxRelevantDocuments), true
	}

	if len(selected) > constant.MaxRelevantDocuments {
		selected = selected[:constant.MaxRelevantDocuments]
	}
	return selected, false
}

func (s *Selector) analyzeQuery(ctx context.Context, query string, docs []*entity.Document) (*documentSelection, error) {
	prompt := buildSelectionPrompt(query, docs)

	raw, err := s.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SelectionSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}, llm.WithTemperature(constant.SelectionTemperature), llm.WithJSONMode())
	if err != nil {
		return nil, err
	}

	var selection documentSelection
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &selection); err != nil {
		return nil, fmt.Errorf("decode selection response: %w", err)
	}
	return &selection, nil
}

func buildSelectionPrompt(query string, docs []*entity.Document) string {
	var sb strings.Builder
	sb.WriteString("You are a legal research assistant. Analyze the following user query and determine which documents from the provided list are most relevant.\n\n")
	sb.WriteString(fmt.Sprintf("User Query: %q\n\n", query))
	sb.WriteString("Available Documents:\n")

	for i, doc := range docs {
		sb.WriteString(fmt.Sprintf("\n%d. ID: %s\n", i+1, doc.Id))
		sb.WriteString(fmt.Sprintf("   Title: %s\n", doc.Title))
		sb.WriteString(fmt.Sprintf("   Type: %s\n", doc.DocumentType))
		sb.WriteString(fmt.Sprintf("   Summary: %s\n", orNA(doc.Summary)))
		sb.WriteString(fmt.Sprintf("   Tags: %s\n", orNA(strings.Join(doc.Tags, ", "))))
		sb.WriteString(fmt.Sprintf("   Jurisdiction: %s\n", orNA(doc.Jurisdiction)))
	}

	sb.WriteString("\nReturn a JSON object with:\n")
	sb.WriteString("1. documentIds: Array of relevant document IDs (strings)\n")
	sb.WriteString("2. reasoning: Brief explanation of why these documents were selected\n\n")
	sb.WriteString("Relevance guidance:\n")
	sb.WriteString("- Prefer the specific instruments that directly regulate the topic.\n")
	sb.WriteString("- If the query is broad (e.g., \"acts related to ...\"), also include key repeal or amendment instruments that affect those acts (e.g., repeal orders, consolidation statutes), so the status can be explained.\n")
	sb.WriteString("- If unsure whether an instrument is still in force, include both the original act and the instrument that repeals or replaces it.\n")

	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// stripCodeFences removes a surrounding markdown code block if the model
// wrapped its JSON despite the JSON response format.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// resolveByID matches returned identifiers against actual document IDs,
// preserving the order the model returned them in.
func resolveByID(ids []string, docs []*entity.Document) []*entity.Document {
	byID := make(map[string]*entity.Document, len(docs))
	for _, doc := range docs {
		byID[strings.ToLower(doc.Id.String())] = doc
	}

	var selected []*entity.Document
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		normalized := strings.ToLower(strings.TrimSpace(id))
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		if doc, ok := byID[normalized]; ok {
			selected = append(selected, doc)
		}
	}
	return selected
}

// resolveByPosition interprets returned identifiers as 1-based positions in
// the candidate list, matching the numbering used in the prompt.
func resolveByPosition(ids []string, docs []*entity.Document) []*entity.Document {
	var selected []*entity.Document
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		pos, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || pos < 1 || pos > len(docs) || seen[pos] {
			continue
		}
		seen[pos] = true
		selected = append(selected, docs[pos-1])
	}
	return selected
}
