package service

import (
	"context"
	"testing"
	"time"

	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrders(t *testing.T) {
	newest := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	older := newest.Add(-48 * time.Hour)

	repo := &fakeOrderRepo{
		orders: []domain.Order{
			{OrderNumber: "ORD-2", CreatedAt: newest},
			{OrderNumber: "ORD-1", CreatedAt: older},
		},
	}

	svc := CreateOrderService(repo)

	res, err := svc.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "ORD-2", res[0].OrderNumber)
	assert.Equal(t, "ORD-1", res[1].OrderNumber)
}

func TestGetOrdersEmptyIsNotFound(t *testing.T) {
	svc := CreateOrderService(&fakeOrderRepo{})

	_, err := svc.GetOrders(context.Background())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetOrdersStoreFailure(t *testing.T) {
	svc := CreateOrderService(&fakeOrderRepo{err: errs.ErrInternalServer})

	_, err := svc.GetOrders(context.Background())
	require.ErrorIs(t, err, errs.ErrInternalServer)
}
