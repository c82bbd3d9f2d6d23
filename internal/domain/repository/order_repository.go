package repository

import "github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"

// OrderRepository define o porto de persistência para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListItems(orderID string) ([]entity.OrderItem, error)
	List(status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status, paymentStatus string) error
}
