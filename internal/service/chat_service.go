package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legal-chat-be/internal/constant"
	"legal-chat-be/internal/dto"
	"legal-chat-be/internal/entity"
	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/internal/pkg/serverutils"
	"legal-chat-be/internal/repository/specification"
	"legal-chat-be/internal/repository/unitofwork"
	"legal-chat-be/pkg/answer"
	"legal-chat-be/pkg/cache"
	"legal-chat-be/pkg/events"
	"legal-chat-be/pkg/llm"
	"legal-chat-be/pkg/relevance"

	"github.com/google/uuid"
)

type IChatService interface {
	Query(ctx context.Context, userId uuid.UUID, request *dto.QueryRequest) (*dto.QueryResponse, error)
	GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]dto.MessageResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	selector   *relevance.Selector
	generator  *answer.Generator
	docCache   *cache.Cache
	audit      IAuditService
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	selector *relevance.Selector,
	generator *answer.Generator,
	docCache *cache.Cache,
	audit IAuditService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		selector:   selector,
		generator:  generator,
		docCache:   docCache,
		audit:      audit,
		log:        log,
	}
}

func (s *chatService) Query(ctx context.Context, userId uuid.UUID, request *dto.QueryRequest) (*dto.QueryResponse, error) {
	started := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, serverutils.NewInternalError("", err)
	}
	if profile == nil || profile.OrganizationId == nil {
		return nil, serverutils.NewForbiddenError(constant.ErrMsgNoOrganization)
	}
	orgId := *profile.OrganizationId

	session, err := s.resolveSession(ctx, uow, userId, orgId, request)
	if err != nil {
		return nil, err
	}

	// History is loaded before the new user turn is stored so the current
	// question only appears once in the generation context.
	history := s.loadHistory(ctx, uow, session.Id)

	userMessage := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      constant.ChatMessageRoleUser,
		Content:   request.Query,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		// The query can still be answered; losing one history row is acceptable.
		s.log.Warn("chat", "failed to persist user message", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	documents, err := s.loadDocuments(ctx, uow, orgId)
	if err != nil {
		return nil, serverutils.NewInternalError(constant.ErrMsgDocumentFetch, err)
	}

	if len(documents) == 0 {
		return &dto.QueryResponse{
			Answer:    constant.NoDocumentsAnswer,
			Sources:   []dto.DocumentResponse{},
			SessionId: session.Id,
			MessageId: "",
		}, nil
	}

	selected, fallbackUsed := s.selector.Select(ctx, request.Query, documents)

	answerText, err := s.generator.Generate(ctx, request.Query, selected, history)
	if err != nil {
		return nil, serverutils.NewInternalError(constant.ErrMsgAIError, err)
	}

	assistantMessage := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   answerText,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, serverutils.NewInternalError(constant.ErrMsgResponseSave, err)
	}

	s.saveSources(ctx, uow, assistantMessage.Id, selected)

	event := events.QueryAnswered{
		SessionId:      session.Id,
		MessageId:      assistantMessage.Id.String(),
		UserId:         userId,
		OrganizationId: orgId,
		QueryLength:    len(request.Query),
		SourceCount:    len(selected),
		DurationMs:     time.Since(started).Milliseconds(),
		FallbackUsed:   fallbackUsed,
		OccurredAt:     time.Now(),
	}
	if err := s.audit.PublishQueryAnswered(ctx, event); err != nil {
		s.log.Warn("chat", "failed to publish audit event", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	sources := make([]dto.DocumentResponse, len(selected))
	for i, doc := range selected {
		sources[i] = toDocumentResponse(doc)
	}

	return &dto.QueryResponse{
		Answer:    answerText,
		Sources:   sources,
		SessionId: session.Id,
		MessageId: assistantMessage.Id.String(),
	}, nil
}

func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, orgId uuid.UUID, request *dto.QueryRequest) (*entity.ChatSession, error) {
	if request.SessionId != "" {
		sessionId, err := uuid.Parse(request.SessionId)
		if err != nil {
			return nil, serverutils.NewValidationError("session_id: must be a valid UUID")
		}

		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: sessionId},
			specification.ByUserID{UserID: userId},
		)
		if err != nil {
			return nil, serverutils.NewInternalError("", err)
		}
		if session == nil {
			return nil, serverutils.NewNotFoundError("Session not found")
		}
		return session, nil
	}

	session := &entity.ChatSession{
		UserId:         userId,
		OrganizationId: orgId,
		Title:          sessionTitle(request.Query),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, serverutils.NewInternalError(constant.ErrMsgSessionCreate, err)
	}
	return session, nil
}

// sessionTitle derives a session title from the first query, truncated to the
// storage limit.
func sessionTitle(query string) string {
	title := strings.TrimSpace(query)
	runes := []rune(title)
	if len(runes) > constant.ChatSessionTitleMaxLength {
		return string(runes[:constant.ChatSessionTitleMaxLength])
	}
	return title
}

// loadHistory returns the last turns of the conversation in chronological
// order. History failures degrade to an empty context instead of failing the
// query.
func (s *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) []llm.Message {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: constant.ChatHistoryLimit},
	)
	if err != nil {
		s.log.Warn("chat", "failed to load chat history", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil
	}

	history := make([]llm.Message, len(messages))
	for i, msg := range messages {
		history[len(messages)-1-i] = llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return history
}

// loadDocuments returns the organization's corpus, served from cache when
// possible.
func (s *chatService) loadDocuments(ctx context.Context, uow unitofwork.UnitOfWork, orgId uuid.UUID) ([]*entity.Document, error) {
	cacheKey := fmt.Sprintf(constant.OrgDocumentsCacheKeyFormat, orgId)

	var documents []*entity.Document
	if s.docCache.GetJSON(ctx, cacheKey, &documents) {
		return documents, nil
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: constant.DocumentFetchLimit},
	)
	if err != nil {
		return nil, err
	}

	s.docCache.SetJSON(ctx, cacheKey, documents, constant.DocumentsCacheTTL)
	return documents, nil
}

func (s *chatService) saveSources(ctx context.Context, uow unitofwork.UnitOfWork, messageId uuid.UUID, selected []*entity.Document) {
	if len(selected) == 0 {
		return
	}

	sources := make([]*entity.MessageSource, len(selected))
	for i, doc := range selected {
		sources[i] = &entity.MessageSource{
			MessageId:  messageId,
			DocumentId: doc.Id,
			// TODO: persist real per-document scores once the selector ranks
			// instead of just filtering.
			RelevanceScore: 1.0,
		}
	}

	if err := uow.MessageSourceRepository().CreateBatch(ctx, sources); err != nil {
		// Citations are auxiliary; the answer has already been persisted.
		s.log.Warn("chat", "failed to persist message sources", map[string]interface{}{
			"message_id": messageId.String(),
			"error":      err.Error(),
		})
	}
}

func (s *chatService) GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("", err)
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("", err)
	}

	messageIds := make([]uuid.UUID, len(messages))
	for i, msg := range messages {
		messageIds[i] = msg.Id
	}

	sources, err := uow.MessageSourceRepository().FindByMessageIds(ctx, messageIds)
	if err != nil {
		return nil, serverutils.NewInternalError("", err)
	}

	sourcesByMessage := make(map[uuid.UUID][]dto.SourceResponse)
	for _, source := range sources {
		resp := dto.SourceResponse{
			DocumentId:     source.DocumentId,
			RelevanceScore: source.RelevanceScore,
		}
		if source.Document != nil {
			resp.Title = source.Document.Title
			resp.DocumentType = source.Document.DocumentType
		}
		sourcesByMessage[source.MessageId] = append(sourcesByMessage[source.MessageId], resp)
	}

	responses := make([]dto.MessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = dto.MessageResponse{
			Id:        msg.Id,
			SessionId: msg.SessionId,
			Role:      msg.Role,
			Content:   msg.Content,
			Sources:   sourcesByMessage[msg.Id],
			CreatedAt: msg.CreatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) GetSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("", err)
	}

	responses := make([]dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = dto.SessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return serverutils.NewInternalError("", err)
	}
	if session == nil {
		return serverutils.NewNotFoundError("Session not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternalError("", err)
	}

	if err := uow.MessageSourceRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		uow.Rollback()
		return serverutils.NewInternalError("", err)
	}
	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		uow.Rollback()
		return serverutils.NewInternalError("", err)
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		uow.Rollback()
		return serverutils.NewInternalError("", err)
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternalError("", err)
	}
	return nil
}

func toDocumentResponse(doc *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		Id:              doc.Id,
		OrganizationId:  doc.OrganizationId,
		Title:           doc.Title,
		DocumentType:    doc.DocumentType,
		Jurisdiction:    doc.Jurisdiction,
		ReferenceNumber: doc.ReferenceNumber,
		EnactedDate:     doc.EnactedDate,
		EffectiveDate:   doc.EffectiveDate,
		Summary:         doc.Summary,
		Content:         doc.Content,
		FileUrl:         doc.FileUrl,
		FileSize:        doc.FileSize,
		Tags:            doc.Tags,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
