package constant

import "time"

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

const (
	DocumentTypeLegislation = "legislation"
	DocumentTypeCase        = "case"
	DocumentTypeRegulation  = "regulation"
	DocumentTypeGuideline   = "guideline"
	DocumentTypeOther       = "other"
)

// Chat limits
const (
	ChatSessionTitleMaxLength = 100
	ChatHistoryLimit          = 10
	MessageMaxLength          = 5000
)

// Document limits
const (
	DocumentFetchLimit           = 100
	DocumentContentPreviewLength = 2000
	MaxRelevantDocuments         = 5
)

// Cache keys and TTLs
const (
	OrgDocumentsCacheKeyFormat = "org_documents:%s"
	OrgDocumentsCachePattern   = "org_documents:*"
	DocumentsCacheTTL          = 5 * time.Minute
)

// Generation parameters
const (
	SelectionTemperature = 0.3
	AnswerTemperature    = 0.5
	AnswerMaxTokens      = 2000
)

// User-facing messages
const (
	ErrMsgUnauthorized      = "Unauthorized access"
	ErrMsgForbidden         = "You do not have permission to perform this action"
	ErrMsgNoOrganization    = "User not associated with an organization"
	ErrMsgNotFound          = "Resource not found"
	ErrMsgValidation        = "Invalid request data"
	ErrMsgInternal          = "An internal error occurred"
	ErrMsgRateLimitExceeded = "Too many requests. Please try again later."
	ErrMsgAIError           = "Failed to generate AI response"
	ErrMsgSessionCreate     = "Failed to create session"
	ErrMsgDocumentFetch     = "Failed to fetch documents"
	ErrMsgResponseSave      = "Failed to save response"

	NoDocumentsAnswer = "I apologize, but there are no documents available in your organization's database yet. Please ask your administrator to upload relevant legislation and legal documents."
)
