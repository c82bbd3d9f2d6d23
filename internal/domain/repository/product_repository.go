package repository

import "github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List pagina o catálogo; search filtra por código/nome/marca (ILIKE),
	// onlyActive restringe a produtos ativos.
	List(search string, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	// ListActiveInStock devolve o snapshot que alimenta o roteador do bot.
	ListActiveInStock() ([]*entity.Product, error)
	// Deactivate faz a exclusão lógica (Active = false).
	Deactivate(id string) error
	// DecrementStock desconta qty de forma condicional: só afeta a linha
	// se o estoque atual for suficiente. Devolve domain.ErrInsufficientStock
	// quando nenhuma linha é afetada.
	DecrementStock(productID string, qty int) error
}
