package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/ports"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/bot"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// llmTimeout limite por chamada externa; latências do provedor não podem
// segurar as goroutines do servidor.
const llmTimeout = 10 * time.Second

// FallbackApology é a resposta fixa quando o LLM falha: o cliente nunca
// vê erro cru, sempre uma oferta de atendimento humano.
const FallbackApology = "Desculpe, estou com uma dificuldade técnica no momento. 🙏 " +
	"Um de nossos vendedores vai continuar seu atendimento em instantes!"

// maxRecommendFallback quantos produtos devolver quando a recomendação
// por IA falha.
const maxRecommendFallback = 5

// BotUseCase expõe o roteador de intenções e o respondedor via LLM.
// Toda falha do LLM degrada para um fallback determinístico: a IA é um
// aprimoramento opcional, nunca uma dependência que bloqueie o fluxo.
type BotUseCase struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	llm          ports.LLMService
	log          zerolog.Logger
}

// NewBotUseCase constrói o caso de uso. llm pode ser nil (bot só com roteador).
func NewBotUseCase(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	llm ports.LLMService,
	log zerolog.Logger,
) *BotUseCase {
	return &BotUseCase{productRepo: productRepo, settingsRepo: settingsRepo, llm: llm, log: log}
}

// Chat roda o roteador de intenções sobre a mensagem do cliente.
func (uc *BotUseCase) Chat(in dto.BotChatRequest) (*dto.BotChatResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	products, settings, err := uc.loadContext()
	if err != nil {
		return nil, err
	}
	reply := bot.Route(in.Message, products, *settings)
	return &dto.BotChatResponse{
		Message:  reply.Message,
		Type:     reply.Type,
		Metadata: reply.Metadata,
	}, nil
}

// Inventory devolve o snapshot de produtos ativos em estoque que
// alimenta o roteador (GET /api/bot/inventory).
func (uc *BotUseCase) Inventory() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListActiveInStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items, nil
}

// SmartReply gera uma resposta livre via LLM. Em qualquer falha devolve
// a mensagem fixa de contingência com Fallback=true; o erro vai só
// para o log.
func (uc *BotUseCase) SmartReply(ctx context.Context, in dto.SmartReplyRequest) (*dto.SmartReplyResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.llm == nil {
		return &dto.SmartReplyResponse{Message: FallbackApology, Fallback: true}, nil
	}
	products, _, err := uc.loadContext()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.GenerateResponse(ctx, in.Message, ports.ReplyContext{
		CustomerName: in.CustomerName,
	}, products)
	if err != nil || text == "" {
		uc.log.Warn().Err(err).Str("conversation_id", in.ConversationID).
			Msg("LLM falhou ao gerar resposta; usando contingência")
		return &dto.SmartReplyResponse{Message: FallbackApology, Fallback: true}, nil
	}
	return &dto.SmartReplyResponse{Message: text}, nil
}

// AnalyzeIntent classifica a intenção via LLM; em falha devolve a
// classificação padrão de baixa confiança.
func (uc *BotUseCase) AnalyzeIntent(ctx context.Context, message string) (*dto.IntentAnalysisResponse, error) {
	if message == "" {
		return nil, domain.ErrInvalidInput
	}
	fallback := &dto.IntentAnalysisResponse{Intent: "other", Confidence: 0}
	if uc.llm == nil {
		return fallback, nil
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	analysis, err := uc.llm.AnalyzeIntent(ctx, message)
	if err != nil || analysis == nil {
		uc.log.Warn().Err(err).Msg("LLM falhou ao classificar intenção; usando padrão")
		return fallback, nil
	}
	return &dto.IntentAnalysisResponse{
		Intent:        analysis.Intent,
		Confidence:    analysis.Confidence,
		ExtractedInfo: analysis.ExtractedInfo,
	}, nil
}

// Recommend sugere peças para o veículo informado; em falha devolve os
// primeiros produtos do catálogo como aproximação trivial.
func (uc *BotUseCase) Recommend(ctx context.Context, in dto.RecommendRequest) ([]dto.ProductResponse, error) {
	if in.VehicleInfo == "" {
		return nil, domain.ErrInvalidInput
	}
	products, _, err := uc.loadContext()
	if err != nil {
		return nil, err
	}

	var picked []entity.Product
	if uc.llm != nil {
		ctx, cancel := context.WithTimeout(ctx, llmTimeout)
		defer cancel()
		picked, err = uc.llm.RecommendProducts(ctx, in.VehicleInfo, products)
		if err != nil {
			uc.log.Warn().Err(err).Msg("LLM falhou ao recomendar; usando os primeiros do catálogo")
			picked = nil
		}
	}
	if picked == nil {
		n := len(products)
		if n > maxRecommendFallback {
			n = maxRecommendFallback
		}
		picked = products[:n]
	}

	items := make([]dto.ProductResponse, 0, len(picked))
	for i := range picked {
		items = append(items, *dto.ToProductResponse(&picked[i]))
	}
	return items, nil
}

// loadContext carrega o snapshot de produtos e a configuração do bot.
func (uc *BotUseCase) loadContext() ([]entity.Product, *entity.BotSettings, error) {
	list, err := uc.productRepo.ListActiveInStock()
	if err != nil {
		return nil, nil, err
	}
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, nil, err
	}
	if settings == nil {
		settings = entity.DefaultBotSettings()
	}
	return products, settings, nil
}
