package domain

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Order rows are written by the storefront checkout and are read-only here.
type Order struct {
	ID           int64           `db:"id" json:"-"`
	OrderNumber  string          `db:"order_number" json:"orderNumber"`
	CustomerName string          `db:"customer_name" json:"customerName"`
	Apartment    string          `db:"apartment" json:"apartment"`
	Block        string          `db:"block" json:"block"`
	Locality     string          `db:"locality" json:"locality"`
	City         string          `db:"city" json:"city"`
	State        string          `db:"state" json:"state"`
	Pincode      string          `db:"pincode" json:"pincode"`
	Email        string          `db:"email" json:"email"`
	Mobile       string          `db:"mobile" json:"mobile"`
	OrderTotal   decimal.Decimal `db:"order_total" json:"orderTotal"`
	OrderItems   types.JSONText  `db:"order_items" json:"orderItems"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}
