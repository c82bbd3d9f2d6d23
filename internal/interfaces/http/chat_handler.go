package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// ChatHandler trata as requisições HTTP de conversas e mensagens.
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler constrói o handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// CreateConversation godoc
// @Summary      Abrir conversa
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConversationRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ConversationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/conversations [post]
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	var in dto.CreateConversationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CustomerName == "" || in.CustomerPhone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerName e customerPhone são obrigatórios"})
	}
	out, err := h.uc.CreateConversation(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConversations godoc
// @Summary      Listar conversas
// @Tags         conversations
// @Produce      json
// @Param        status  query  string  false  "active | waiting | closed"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ConversationListResponse
// @Router       /api/conversations [get]
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" {
		switch status {
		case entity.ConversationActive, entity.ConversationWaiting, entity.ConversationClosed:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListConversations(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetConversation godoc
// @Summary      Detalhar conversa
// @Tags         conversations
// @Produce      json
// @Param        id   path  string  true  "ID da conversa"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetConversation(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
	}
	return c.JSON(out)
}

// ListMessages godoc
// @Summary      Listar mensagens da conversa
// @Tags         conversations
// @Produce      json
// @Param        id      path   string  true   "ID da conversa"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MessageListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	id := c.Params("id")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListMessages(id, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AppendMessage godoc
// @Summary      Enviar mensagem na conversa
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conversa"
// @Param        body  body  dto.AppendMessageRequest  true  "Mensagem"
// @Success      201   {object}  dto.AppendMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/messages [post]
func (h *ChatHandler) AppendMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AppendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	msg, botReply, err := h.uc.AppendMessage(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sender, type ou content inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AppendMessageResponse{Message: *msg, BotReply: botReply})
}

// MarkRead godoc
// @Summary      Marcar mensagens como lidas
// @Tags         conversations
// @Produce      json
// @Param        id      path   string  true   "ID da conversa"
// @Param        reader  query  string  false  "Remetente leitor"  default(seller)
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/read [put]
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	reader := c.Query("reader", entity.SenderSeller)
	if !entity.ValidSender(reader) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reader inválido"})
	}
	if err := h.uc.MarkRead(id, reader); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign godoc
// @Summary      Atribuir conversa a um vendedor
// @Tags         conversations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conversa"
// @Param        body  body  dto.AssignConversationRequest  true  "sellerId (null devolve ao bot)"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/assign [put]
func (h *ChatHandler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AssignConversationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Assign(id, in.SellerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Mudar status da conversa
// @Tags         conversations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conversa"
// @Param        body  body  dto.UpdateConversationStatusRequest  true  "active | waiting | closed"
// @Success      204  "sem conteúdo"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/status [put]
func (h *ChatHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateConversationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.UpdateStatus(id, in.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lê limit/offset com os defaults da listagem padrão.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
