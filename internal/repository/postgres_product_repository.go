package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	timestamp := time.Now()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO products(id, product_name, brand, price, market_price, percentage_of_discount_offered, stock, category, description, seller, delivery_info, emi, images, manufacturing_date, expiry_date, listing_date, created_at, updated_at)
		VALUES (:id, :product_name, :brand, :price, :market_price, :percentage_of_discount_offered, :stock, :category, :description, :seller, :delivery_info, :emi, :images, :manufacturing_date, :expiry_date, :listing_date, :created_at, :updated_at)`, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return errs.ErrPersistence
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, `UPDATE products SET product_name=:product_name, brand=:brand, price=:price, market_price=:market_price, percentage_of_discount_offered=:percentage_of_discount_offered, stock=:stock, category=:category, description=:description, seller=:seller, delivery_info=:delivery_info, emi=:emi, images=:images, manufacturing_date=:manufacturing_date, expiry_date=:expiry_date, listing_date=:listing_date, updated_at=:updated_at WHERE id=:id`, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrPersistence
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrPersistence
	}

	if rows == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrPersistence
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrPersistence
	}

	if rows == 0 {
		return errs.ErrNotFound
	}

	return
}
