package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrichedCartProduct is a cart line item joined with the live document-store
// product fields. Line items whose product has been deleted are omitted from
// the response entirely.
type EnrichedCartProduct struct {
	ProductID string                 `json:"productId"`
	Quantity  int                    `json:"quantity"`
	Price     decimal.Decimal        `json:"price"`
	Product   map[string]interface{} `json:"product"`
}

type CartResponse struct {
	ID             int64                 `json:"id"`
	UserID         string                `json:"userId"`
	Products       []EnrichedCartProduct `json:"products"`
	TotalCartValue decimal.Decimal       `json:"totalCartValue"`
	IsPaid         bool                  `json:"isPaid"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
