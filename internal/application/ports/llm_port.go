package ports

import (
	"context"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// ChatTurn um turno do histórico enviado ao modelo.
type ChatTurn struct {
	Role    string // "user" | "assistant"
	Content string
}

// ReplyContext contexto opcional da conversa para o gerador de respostas.
type ReplyContext struct {
	CustomerName string
	History      []ChatTurn
}

// IntentAnalysis classificação de intenção devolvida pelo modelo.
type IntentAnalysis struct {
	Intent        string            // greeting, product_search, purchase, payment, hours, complaint, other
	Confidence    float64           // 0..1
	ExtractedInfo map[string]string // ex.: {"code": "FLT-1020", "quantity": "2"}
}

// LLMService define o porto de saída para o respondedor assistido por IA.
// Qualquer adaptador (OpenAI, Anthropic, mock) deve implementar esta interface.
// Os métodos retornam erro cru: o fallback amigável ao cliente é
// responsabilidade do caso de uso chamador, que assim mantém o motivo
// do erro disponível para logs e testes.
type LLMService interface {
	// GenerateResponse produz uma resposta livre para a mensagem do cliente,
	// considerando o histórico e o catálogo disponível.
	// O contexto deve trazer timeout para não bloquear em chamadas externas.
	GenerateResponse(ctx context.Context, userMessage string, rc ReplyContext, products []entity.Product) (string, error)

	// AnalyzeIntent classifica a intenção da mensagem.
	AnalyzeIntent(ctx context.Context, message string) (*IntentAnalysis, error)

	// RecommendProducts seleciona do catálogo as peças compatíveis com o
	// veículo descrito.
	RecommendProducts(ctx context.Context, vehicleInfo string, products []entity.Product) ([]entity.Product, error)
}
