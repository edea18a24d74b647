package service

import (
	"context"

	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/internal/repository"
	"github.com/palrajin0126/admin-panel/pkg/errs"
)

type OrderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func CreateOrderService(orderRepo repository.OrderRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

// GetOrders returns every customer order, newest first. An empty order book
// is reported as not-found so the caller can tell it apart from a store
// failure.
func (s *OrderServiceImpl) GetOrders(ctx context.Context) (res []domain.Order, err error) {
	res, err = s.orderRepo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, errs.ErrNotFound
	}

	return res, nil
}
