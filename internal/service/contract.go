package service

import (
	"context"

	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/internal/dto"
	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (res domain.Product, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (res domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (res pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id string) (doc map[string]interface{}, err error)
}

type CartService interface {
	GetCarts(ctx context.Context) (res []dto.CartResponse, err error)
}

type OrderService interface {
	GetOrders(ctx context.Context) (res []domain.Order, err error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, data dto.CategoryRequest) (id string, err error)
	UpdateCategory(ctx context.Context, data dto.CategoryRequest) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
	GetCategories(ctx context.Context) (docs []map[string]interface{}, err error)
}

// EventPublisher emits catalog change events after a fully successful
// two-phase write. Publishing is best-effort; a failed publish is logged
// and never surfaced to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg []byte) (err error)
}
