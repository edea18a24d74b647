package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CartProduct struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CartProducts is stored as a JSONB column on the cart row.
type CartProducts []CartProduct

func (p CartProducts) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *CartProducts) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return errors.New("cart products column is not a byte slice")
	}
	return json.Unmarshal(b, p)
}

type Cart struct {
	ID             int64           `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"userId"`
	Products       CartProducts    `db:"products" json:"products"`
	TotalCartValue decimal.Decimal `db:"total_cart_value" json:"totalCartValue"`
	IsPaid         bool            `db:"is_paid" json:"isPaid"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}
