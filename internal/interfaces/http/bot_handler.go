package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
)

// BotHandler trata as rotas públicas do bot (roteador e LLM).
type BotHandler struct {
	uc *usecase.BotUseCase
}

// NewBotHandler constrói o handler.
func NewBotHandler(uc *usecase.BotUseCase) *BotHandler {
	return &BotHandler{uc: uc}
}

// Chat godoc
// @Summary      Resposta determinística do bot
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BotChatRequest  true  "Mensagem do cliente"
// @Success      200   {object}  dto.BotChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bot/chat [post]
func (h *BotHandler) Chat(c *fiber.Ctx) error {
	var in dto.BotChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message é obrigatório"})
	}
	out, err := h.uc.Chat(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Catálogo visível ao bot (ativos com estoque)
// @Tags         bot
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/bot/inventory [get]
func (h *BotHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SmartReply godoc
// @Summary      Resposta gerada por LLM (com fallback fixo)
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SmartReplyRequest  true  "Mensagem do cliente"
// @Success      200   {object}  dto.SmartReplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bot/smart-reply [post]
func (h *BotHandler) SmartReply(c *fiber.Ctx) error {
	var in dto.SmartReplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message é obrigatório"})
	}
	out, err := h.uc.SmartReply(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AnalyzeIntent godoc
// @Summary      Classificar intenção da mensagem
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BotChatRequest  true  "Mensagem do cliente"
// @Success      200   {object}  dto.IntentAnalysisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bot/analyze-intent [post]
func (h *BotHandler) AnalyzeIntent(c *fiber.Ctx) error {
	var in dto.BotChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message é obrigatório"})
	}
	out, err := h.uc.AnalyzeIntent(c.UserContext(), in.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recommend godoc
// @Summary      Recomendar peças para um veículo
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecommendRequest  true  "Descrição do veículo"
// @Success      200   {array}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bot/recommend [post]
func (h *BotHandler) Recommend(c *fiber.Ctx) error {
	var in dto.RecommendRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.VehicleInfo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vehicleInfo é obrigatório"})
	}
	out, err := h.uc.Recommend(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
