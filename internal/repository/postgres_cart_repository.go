package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CartRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) GetCarts(ctx context.Context) (data []domain.Cart, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM carts")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCarts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}
