package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
)

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	price, _ := decimal.NewFromString("35.90")
	first, err := uc.Create(dto.CreateProductRequest{
		Code:  "FLT-1020",
		Name:  "Filtro de óleo",
		Price: price,
		Stock: 12,
	})
	require.NoError(t, err)
	assert.True(t, first.Active, "produto nasce ativo")

	_, err = uc.Create(dto.CreateProductRequest{
		Code:  "FLT-1020",
		Name:  "Outro filtro",
		Price: price,
		Stock: 3,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	negative, _ := decimal.NewFromString("-1.00")
	cases := []dto.CreateProductRequest{
		{Name: "Sem código", Stock: 1},
		{Code: "FLT-1", Stock: 1},
		{Code: "FLT-1", Name: "Preço negativo", Price: negative},
		{Code: "FLT-1", Name: "Estoque negativo", Stock: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v deve ser rejeitado", in)
	}
}

func TestProductUpdate_ParcialPreservaDemaisCampos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	price, _ := decimal.NewFromString("35.90")
	created, err := uc.Create(dto.CreateProductRequest{
		Code:     "FLT-1020",
		Name:     "Filtro de óleo",
		Brand:    "Fram",
		Category: "filtro",
		Price:    price,
		Stock:    12,
	})
	require.NoError(t, err)

	newStock := 7
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: &newStock})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, "Filtro de óleo", updated.Name)
	assert.Equal(t, "Fram", updated.Brand)
	assert.Equal(t, "FLT-1020", updated.Code, "o código nunca muda")
}

func TestProductUpdate_PrecoNegativoRejeitado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	price, _ := decimal.NewFromString("35.90")
	created, err := uc.Create(dto.CreateProductRequest{
		Code: "FLT-1020", Name: "Filtro de óleo", Price: price, Stock: 12,
	})
	require.NoError(t, err)

	negative, _ := decimal.NewFromString("-0.01")
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDeactivate_SomeDaVitrineDoBot(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	price, _ := decimal.NewFromString("35.90")
	created, err := uc.Create(dto.CreateProductRequest{
		Code: "FLT-1020", Name: "Filtro de óleo", Price: price, Stock: 12,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	snapshot, err := repo.ListActiveInStock()
	require.NoError(t, err)
	assert.Empty(t, snapshot, "produto inativo não aparece para o bot")
}

func TestProductDeactivate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	assert.ErrorIs(t, uc.Deactivate("nao-existe"), domain.ErrNotFound)
}
