package service

import (
	"context"

	"go-inventory-web/internal/client"
	"go-inventory-web/internal/model"
	"go-inventory-web/pkg/validator"
)

type OrderService interface {
	Place(ctx context.Context, order model.OrderDto) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
}

type orderService struct {
	backend client.Backend
}

func NewOrderService(backend client.Backend) OrderService {
	return &orderService{backend: backend}
}

// Place forwards the order. Backend errors pass through untouched so the
// handler can surface the server's message (e.g. insufficient stock) verbatim.
func (s *orderService) Place(ctx context.Context, order model.OrderDto) (*model.Order, error) {
	if err := validator.FirstError(order); err != nil {
		return nil, err
	}
	return s.backend.PlaceOrder(ctx, order)
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.backend.ListOrders(ctx)
}

func (s *orderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	return s.backend.GetOrder(ctx, id)
}
