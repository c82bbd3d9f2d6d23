package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/ports"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// Verificação em tempo de compilação de que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const (
	maxCatalogLines = 40

	replySystemPrompt = `Você é um vendedor experiente de uma loja de autopeças brasileira.
Responda mensagens de clientes no WhatsApp de forma curta, cordial e objetiva, em português.
Use APENAS os produtos do catálogo fornecido; nunca invente peças, preços ou prazos.
Se não souber responder, peça mais detalhes sobre o veículo (marca, modelo, ano).`

	intentSystemPrompt = `Você classifica mensagens de clientes de uma loja de autopeças.
Devolva SOMENTE um objeto JSON válido (sem markdown, sem blocos de código) com esta estrutura exata:
{
  "intent": "<greeting|product_search|purchase|payment|hours|complaint|other>",
  "confidence": <número decimal entre 0.0 e 1.0>,
  "extracted_info": {"<chave>": "<valor>"}
}

Regras:
- intent: a intenção principal da mensagem.
- confidence: 0.9-1.0 = alta certeza, 0.7-0.89 = provável, <0.7 = estimado.
- extracted_info: dados úteis como "code", "quantity", "vehicle". Objeto vazio se não houver.
- Não inclua texto fora do JSON. Apenas o objeto JSON.`

	recommendSystemPrompt = `Você é um especialista em compatibilidade de autopeças.
Dado um veículo e um catálogo numerado, escolha as peças compatíveis.
Devolva SOMENTE um objeto JSON válido (sem markdown) com esta estrutura exata:
{"codes": ["<código do produto>", ...]}
Use apenas códigos presentes no catálogo. Lista vazia se nada for compatível.`
)

// OpenAIService adaptador que implementa LLMService usando a API de chat da OpenAI.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService constrói o adaptador.
// model costuma ser "gpt-4o-mini". Se apiKey estiver vazio as chamadas
// devolvem erro descritivo em vez de panic.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// jsonBlockRe captura o primeiro objeto JSON do texto mesmo que o modelo
// o envolva em markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementação do porto ────────────────────────────────────────────────────

// GenerateResponse produz uma resposta livre usando o histórico da conversa
// e um resumo do catálogo como contexto.
func (s *OpenAIService) GenerateResponse(
	ctx context.Context,
	userMessage string,
	rc ports.ReplyContext,
	products []entity.Product,
) (string, error) {
	system := replySystemPrompt + "\n\nCatálogo disponível:\n" + catalogDigest(products)
	if rc.CustomerName != "" {
		system += "\n\nNome do cliente: " + rc.CustomerName
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(rc.History)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range rc.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	raw, err := s.complete(ctx, msgs)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// AnalyzeIntent classifica a intenção da mensagem via prompt JSON estrito.
func (s *OpenAIService) AnalyzeIntent(ctx context.Context, message string) (*ports.IntentAnalysis, error) {
	raw, err := s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: intentSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: message},
	})
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: nenhum JSON válido na resposta do modelo (resposta: %s)", raw)
	}

	var payload struct {
		Intent        string            `json:"intent"`
		Confidence    float64           `json:"confidence"`
		ExtractedInfo map[string]string `json:"extracted_info"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de intenção: %w (JSON extraído: %s)", err, cleanJSON)
	}

	confidence := payload.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return &ports.IntentAnalysis{
		Intent:        payload.Intent,
		Confidence:    confidence,
		ExtractedInfo: payload.ExtractedInfo,
	}, nil
}

// RecommendProducts pede ao modelo os códigos compatíveis e resolve-os
// contra o catálogo recebido, preservando a ordem devolvida.
func (s *OpenAIService) RecommendProducts(
	ctx context.Context,
	vehicleInfo string,
	products []entity.Product,
) ([]entity.Product, error) {
	system := recommendSystemPrompt + "\n\nCatálogo:\n" + catalogDigest(products)

	raw, err := s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: "Veículo: " + vehicleInfo},
	})
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: nenhum JSON válido na resposta do modelo (resposta: %s)", raw)
	}

	var payload struct {
		Codes []string `json:"codes"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de recomendação: %w (JSON extraído: %s)", err, cleanJSON)
	}

	byCode := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byCode[strings.ToLower(p.Code)] = p
	}

	out := make([]entity.Product, 0, len(payload.Codes))
	seen := make(map[string]bool, len(payload.Codes))
	for _, code := range payload.Codes {
		key := strings.ToLower(strings.TrimSpace(code))
		if seen[key] {
			continue
		}
		if p, ok := byCode[key]; ok {
			out = append(out, p)
			seen[key] = true
		}
	}
	return out, nil
}

// complete envia a conversa ao modelo e devolve o texto da primeira escolha.
func (s *OpenAIService) complete(ctx context.Context, msgs []openai.ChatCompletionMessage) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("AI: cliente OpenAI não configurado")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: msgs,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada OpenAI falhou: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI devolveu resposta vazia")
	}
	return resp.Choices[0].Message.Content, nil
}

// catalogDigest resume o catálogo em linhas curtas para caber no prompt.
func catalogDigest(products []entity.Product) string {
	if len(products) == 0 {
		return "(catálogo vazio)"
	}
	var b strings.Builder
	for i, p := range products {
		if i >= maxCatalogLines {
			fmt.Fprintf(&b, "... e mais %d produtos\n", len(products)-maxCatalogLines)
			break
		}
		fmt.Fprintf(&b, "- [%s] %s | %s | R$ %s | estoque: %d\n",
			p.Code, p.Name, p.Category, p.Price.StringFixed(2), p.Stock)
	}
	return b.String()
}

// extractJSON extrai o primeiro objeto JSON bem formado de um texto livre.
// Estratégia em dois passos:
//  1. Remover blocos de código markdown (```json ... ``` ou ``` ... ```).
//  2. Regex para capturar o primeiro bloco { ... }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
