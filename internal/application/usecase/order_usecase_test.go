package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

type orderFixture struct {
	uc          *usecase.OrderUseCase
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
}

func newOrderFixture() *orderFixture {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	productRepo := newFakeProductRepo(
		entity.Product{ID: "p1", Code: "FLT-1020", Name: "Filtro de óleo", Price: price("35.90"), Stock: 10, Active: true},
		entity.Product{ID: "p2", Code: "BAT-60AH", Name: "Bateria 60Ah", Price: price("450.00"), Stock: 2, Active: true},
		entity.Product{ID: "p3", Code: "OLD-0001", Name: "Peça descontinuada", Price: price("1.00"), Stock: 5, Active: false},
	)
	orderRepo := newFakeOrderRepo()
	tx := &fakeTxRunner{orderRepo: orderRepo, productRepo: productRepo}
	return &orderFixture{
		uc:          usecase.NewOrderUseCase(orderRepo, productRepo, tx),
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestOrderCreate_BaixaEstoqueECalculaTotal(t *testing.T) {
	f := newOrderFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "João da Silva",
		CustomerPhone: "+55 41 99999-0001",
		PaymentMethod: "pix",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Total = 2×35,90 + 450,00
	want, _ := decimal.NewFromString("521.80")
	assert.True(t, out.Total.Equal(want), "total esperado 521.80, obtido %s", out.Total)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, entity.PaymentPending, out.PaymentStatus)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Filtro de óleo", out.Items[0].ProductName,
		"o nome do produto fica congelado no item")

	assert.Equal(t, 8, f.productRepo.stockOf("p1"))
	assert.Equal(t, 1, f.productRepo.stockOf("p2"))
}

func TestOrderCreate_EstoqueInsuficienteAbortaTudo(t *testing.T) {
	f := newOrderFixture()

	// p2 tem só 2 em estoque; o pedido inteiro deve falhar e nenhum
	// estoque pode ser debitado (nem o do p1, que teria estoque).
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName: "João da Silva",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 5},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.productRepo.stockOf("p1"), "rollback deve restaurar o estoque do p1")
	assert.Equal(t, 2, f.productRepo.stockOf("p2"))
	assert.Zero(t, f.orderRepo.count(), "nenhum pedido pode ser gravado")
}

func TestOrderCreate_ProdutoInativoRejeitado(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName: "João da Silva",
		Items:        []dto.OrderItemRequest{{ProductID: "p3", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreate_Validacao(t *testing.T) {
	f := newOrderFixture()

	cases := []dto.CreateOrderRequest{
		{CustomerName: "", Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}}},
		{CustomerName: "João", Items: nil},
		{CustomerName: "João", Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 0}}},
		{CustomerName: "João", Items: []dto.OrderItemRequest{{ProductID: "", Quantity: 1}}},
	}
	for i, in := range cases {
		_, err := f.uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d deve ser rejeitado", i)
	}
}

func TestOrderUpdateStatus_Validacao(t *testing.T) {
	f := newOrderFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName: "João da Silva",
		Items:        []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: "teleportado"}),
		domain.ErrInvalidInput)
	assert.NoError(t, f.uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{
		Status:        entity.OrderConfirmed,
		PaymentStatus: entity.PaymentPaid,
	}))

	got, err := f.uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
}
