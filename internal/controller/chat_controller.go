package controller

import (
	"legal-chat-be/internal/dto"
	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/internal/pkg/serverutils"
	"legal-chat-be/internal/service"
	"legal-chat-be/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	service     service.IChatService
	chatLimiter *ratelimit.Limiter
	log         logger.ILogger
}

func NewChatController(service service.IChatService, chatLimiter *ratelimit.Limiter, log logger.ILogger) IChatController {
	return &chatController{
		service:     service,
		chatLimiter: chatLimiter,
		log:         log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Post("query", serverutils.RateLimitMiddleware(c.chatLimiter, c.log), c.Query)
	h.Get("messages", c.GetMessages)
	h.Get("sessions", c.GetSessions)
	h.Delete("sessions/:id", c.DeleteSession)
}

func (c *chatController) Query(ctx *fiber.Ctx) error {
	userId, err := authenticatedUser(ctx)
	if err != nil {
		return err
	}

	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("body: must be valid JSON")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Query(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	userId, err := authenticatedUser(ctx)
	if err != nil {
		return err
	}

	sessionId, err := uuid.Parse(ctx.Query("session_id"))
	if err != nil {
		return serverutils.NewValidationError("session_id: must be a valid UUID")
	}

	messages, err := c.service.GetMessages(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"messages": messages})
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, err := authenticatedUser(ctx)
	if err != nil {
		return err
	}

	sessions, err := c.service.GetSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"sessions": sessions})
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userId, err := authenticatedUser(ctx)
	if err != nil {
		return err
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("id: must be a valid UUID")
	}

	if err := c.service.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func authenticatedUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok || userIdStr == "" {
		return uuid.Nil, serverutils.NewUnauthorizedError("")
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.NewUnauthorizedError("")
	}
	return userId, nil
}
