package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
)

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM customer_orders ORDER BY created_at DESC")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}
