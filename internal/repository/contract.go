package repository

import (
	"context"

	"github.com/palrajin0126/admin-panel/internal/domain"
	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
)

// ProductRepository is the relational store client for the canonical
// product rows.
type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

// CartRepository reads cart rows; carts are written by the storefront, not
// by this service.
type CartRepository interface {
	GetCarts(ctx context.Context) (data []domain.Cart, err error)
}

type OrderRepository interface {
	GetOrders(ctx context.Context) (data []domain.Order, err error)
}

// CatalogRepository is the document store client holding the denormalized
// product copies and the category records.
type CatalogRepository interface {
	AddProduct(ctx context.Context, id string, doc map[string]interface{}) (err error)
	UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetProductByID(ctx context.Context, id string) (doc map[string]interface{}, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (docs []map[string]interface{}, total int64, err error)

	AddCategory(ctx context.Context, id string, doc map[string]interface{}) (err error)
	UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
	GetCategories(ctx context.Context) (docs []map[string]interface{}, err error)
}
