package service

import (
	"context"
	"errors"
	"testing"

	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartsEnrichesLineItems(t *testing.T) {
	cartRepo := &fakeCartRepo{
		carts: []domain.Cart{
			{
				ID:     1,
				UserID: "user-1",
				Products: domain.CartProducts{
					{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(199.99)},
					{ProductID: "p2", Quantity: 1, Price: decimal.NewFromFloat(49.50)},
				},
				TotalCartValue: decimal.NewFromFloat(449.48),
			},
		},
	}

	catalogRepo := newFakeCatalogRepo()
	catalogRepo.products["p1"] = map[string]interface{}{"productName": "headphones", "brand": "Acme"}
	catalogRepo.products["p2"] = map[string]interface{}{"productName": "cable"}

	svc := CreateCartService(cartRepo, catalogRepo)

	res, err := svc.GetCarts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Products, 2)

	assert.Equal(t, "p1", res[0].Products[0].ProductID)
	assert.Equal(t, 2, res[0].Products[0].Quantity)
	assert.Equal(t, "headphones", res[0].Products[0].Product["productName"])
	assert.Equal(t, "cable", res[0].Products[1].Product["productName"])
	assert.True(t, res[0].TotalCartValue.Equal(decimal.NewFromFloat(449.48)))
}

func TestGetCartsDropsDeletedProducts(t *testing.T) {
	total := decimal.NewFromFloat(449.48)
	cartRepo := &fakeCartRepo{
		carts: []domain.Cart{
			{
				ID:     1,
				UserID: "user-1",
				Products: domain.CartProducts{
					{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(199.99)},
					{ProductID: "gone", Quantity: 1, Price: decimal.NewFromFloat(49.50)},
				},
				TotalCartValue: total,
			},
		},
	}

	catalogRepo := newFakeCatalogRepo()
	catalogRepo.products["p1"] = map[string]interface{}{"productName": "headphones"}

	svc := CreateCartService(cartRepo, catalogRepo)

	res, err := svc.GetCarts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)

	// The deleted product's line item is dropped, not an error, and the
	// stored total is returned unchanged.
	require.Len(t, res[0].Products, 1)
	assert.Equal(t, "p1", res[0].Products[0].ProductID)
	assert.True(t, res[0].TotalCartValue.Equal(total))
}

func TestGetCartsSingleLookupFailureOnlyDropsThatItem(t *testing.T) {
	cartRepo := &fakeCartRepo{
		carts: []domain.Cart{
			{
				ID:     1,
				UserID: "user-1",
				Products: domain.CartProducts{
					{ProductID: "p1", Quantity: 1, Price: decimal.NewFromFloat(10)},
					{ProductID: "flaky", Quantity: 1, Price: decimal.NewFromFloat(20)},
				},
			},
			{
				ID:     2,
				UserID: "user-2",
				Products: domain.CartProducts{
					{ProductID: "p1", Quantity: 3, Price: decimal.NewFromFloat(10)},
				},
			},
		},
	}

	catalogRepo := newFakeCatalogRepo()
	catalogRepo.products["p1"] = map[string]interface{}{"productName": "headphones"}
	catalogRepo.lookupErr["flaky"] = errors.New("deadline exceeded")

	svc := CreateCartService(cartRepo, catalogRepo)

	res, err := svc.GetCarts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Len(t, res[0].Products, 1)
	assert.Len(t, res[1].Products, 1)
}

func TestGetCartsEmptyIsNotFound(t *testing.T) {
	svc := CreateCartService(&fakeCartRepo{}, newFakeCatalogRepo())

	_, err := svc.GetCarts(context.Background())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetCartsStoreFailure(t *testing.T) {
	svc := CreateCartService(&fakeCartRepo{err: errs.ErrInternalServer}, newFakeCatalogRepo())

	_, err := svc.GetCarts(context.Background())
	require.ErrorIs(t, err, errs.ErrInternalServer)
}
