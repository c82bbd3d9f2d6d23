package usecase

import (
	"context"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// ChatTxRunner executa o insert da mensagem e o avanço de lastMessageAt
// na mesma transação (invariante da conversa).
type ChatTxRunner interface {
	RunChat(ctx context.Context, fn func(
		msgRepo repository.MessageRepository,
		convRepo repository.ConversationRepository,
	) error) error
}

// OrderTxRunner executa a baixa de estoque e a gravação do pedido
// em uma única transação.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Broadcaster notifica os clientes conectados quando uma mensagem é
// persistida. A entrega é melhor esforço: conexões mortas são ignoradas
// e o polling do cliente recupera o que se perdeu.
type Broadcaster interface {
	BroadcastNewMessage(message *entity.Message)
}

// ReportPDFGenerator gera o PDF do relatório de vendas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportDTO) ([]byte, error)
}
