package relevance

import (
	"sort"
	"strings"
	"unicode"

	"legal-chat-be/internal/constant"
	"legal-chat-be/internal/entity"
)

type scoredDocument struct {
	doc   *entity.Document
	score int
}

func tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func searchText(doc *entity.Document) string {
	content := doc.Content
	if len(content) > constant.DocumentContentPreviewLength {
		content = content[:constant.DocumentContentPreviewLength]
	}

	parts := []string{
		doc.Title,
		doc.Summary,
		content,
		strings.Join(doc.Tags, " "),
		doc.Jurisdiction,
		doc.ReferenceNumber,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoreByKeywords ranks documents by naive keyword overlap with the query.
// Documents with no matching tokens are dropped; at most max are returned.
func ScoreByKeywords(query string, docs []*entity.Document, max int) []*entity.Document {
	tokens := tokenize(query)
	loweredQuery := strings.ToLower(strings.TrimSpace(query))

	scored := make([]scoredDocument, 0, len(docs))
	for _, doc := range docs {
		haystack := searchText(doc)

		score := 0
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				score++
			}
		}
		if loweredQuery != "" && strings.Contains(strings.ToLower(doc.Title), loweredQuery) {
			score += 3
		}

		if score > 0 {
			scored = append(scored, scoredDocument{doc: doc, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > max {
		scored = scored[:max]
	}

	result := make([]*entity.Document, len(scored))
	for i, s := range scored {
		result[i] = s.doc
	}
	return result
}
