package service

import (
	"context"
	"sync"

	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/internal/dto"
	"github.com/palrajin0126/admin-panel/internal/repository"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

func CreateCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

// itemLookup is the settled result of one document-store product fetch.
// A line item whose product no longer exists is dropped from the cart, not
// treated as an error.
type itemLookup struct {
	item    domain.CartProduct
	product map[string]interface{}
	ok      bool
}

// GetCarts joins every cart line item with its live catalog document. All
// product lookups across all carts run concurrently; the response waits for
// every lookup to settle. A single failed lookup only removes that line
// item. The stored cart total is returned unchanged even when items are
// dropped.
func (s *CartServiceImpl) GetCarts(ctx context.Context) (res []dto.CartResponse, err error) {
	carts, err := s.cartRepo.GetCarts(ctx)
	if err != nil {
		return nil, err
	}

	if len(carts) == 0 {
		return nil, errs.ErrNotFound
	}

	lookups := make([][]itemLookup, len(carts))

	var wg sync.WaitGroup
	for i, cart := range carts {
		lookups[i] = make([]itemLookup, len(cart.Products))
		for j, item := range cart.Products {
			wg.Add(1)
			go func(i, j int, item domain.CartProduct) {
				defer wg.Done()

				doc, lookupErr := s.catalogRepo.GetProductByID(ctx, item.ProductID)
				if lookupErr != nil {
					if lookupErr != errs.ErrNotFound {
						log.Ctx(ctx).Error().Err(lookupErr).Str("component", "GetCarts").Str("productID", item.ProductID).Msg("dropping cart item after failed catalog lookup")
					}
					lookups[i][j] = itemLookup{item: item}
					return
				}

				lookups[i][j] = itemLookup{item: item, product: doc, ok: true}
			}(i, j, item)
		}
	}
	wg.Wait()

	for i, cart := range carts {
		enriched := make([]dto.EnrichedCartProduct, 0, len(cart.Products))
		for _, lookup := range lookups[i] {
			if !lookup.ok {
				continue
			}
			enriched = append(enriched, dto.EnrichedCartProduct{
				ProductID: lookup.item.ProductID,
				Quantity:  lookup.item.Quantity,
				Price:     lookup.item.Price,
				Product:   lookup.product,
			})
		}

		res = append(res, dto.CartResponse{
			ID:             cart.ID,
			UserID:         cart.UserID,
			Products:       enriched,
			TotalCartValue: cart.TotalCartValue,
			IsPaid:         cart.IsPaid,
			CreatedAt:      cart.CreatedAt,
			UpdatedAt:      cart.UpdatedAt,
		})
	}

	return res, nil
}
