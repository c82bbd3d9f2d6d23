package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// OrderUseCase finaliza pedidos e atende as telas administrativas.
// A finalização desconta o estoque e grava cabeçalho + itens em uma
// única transação: pedidos concorrentes sobre a mesma peça são
// serializados pelo banco e nunca vendem além do estoque.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	txRunner    OrderTxRunner
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo, txRunner: txRunner}
}

// Create finaliza um pedido. Valida itens fora da transação (leitura) e
// dentro dela faz a baixa condicional de estoque linha a linha; qualquer
// falta de estoque aborta tudo (rollback).
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validação de itens e snapshot de nome/preço (só leitura).
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		ConversationID: in.ConversationID,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  entity.PaymentPending,
		Status:         entity.OrderPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	total := decimal.Zero
	for _, item := range in.Items {
		product := productsByID[item.ProductID]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	order.Total = total

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range order.Items {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(&order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(order), nil
}

// GetByID obtém um pedido com seus itens.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.ListItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return dto.ToOrderResponse(order), nil
}

// List pagina pedidos por status (vazio = todos).
func (uc *OrderUseCase) List(status string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus muda o status do pedido e/ou do pagamento.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) error {
	if in.Status != "" {
		switch in.Status {
		case entity.OrderPending, entity.OrderConfirmed, entity.OrderShipped, entity.OrderDelivered, entity.OrderCancelled:
		default:
			return domain.ErrInvalidInput
		}
	}
	if in.PaymentStatus != "" {
		switch in.PaymentStatus {
		case entity.PaymentPending, entity.PaymentPaid, entity.PaymentFailed:
		default:
			return domain.ErrInvalidInput
		}
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	status := order.Status
	if in.Status != "" {
		status = in.Status
	}
	paymentStatus := order.PaymentStatus
	if in.PaymentStatus != "" {
		paymentStatus = in.PaymentStatus
	}
	return uc.orderRepo.UpdateStatus(id, status, paymentStatus)
}
