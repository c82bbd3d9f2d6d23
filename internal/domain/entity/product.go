package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa uma peça do catálogo.
// Code é único; a exclusão é lógica (Active = false) para preservar
// o histórico de pedidos que referenciam o produto.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// InStock informa se o produto está ativo e com estoque disponível.
func (p *Product) InStock() bool {
	return p.Active && p.Stock > 0
}
