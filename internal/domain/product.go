package domain

import (
	"time"

	"github.com/lib/pq"
)

// Product is the canonical relational record. A denormalized copy keyed by
// the same ID lives in the document store and is kept in sync by the
// product service's two-phase writes.
type Product struct {
	ID                          string         `db:"id" json:"id"`
	ProductName                 string         `db:"product_name" json:"productName"`
	Brand                       string         `db:"brand" json:"brand"`
	Price                       float64        `db:"price" json:"price"`
	MarketPrice                 float64        `db:"market_price" json:"marketPrice"`
	PercentageOfDiscountOffered float64        `db:"percentage_of_discount_offered" json:"percentageOfDiscountOffered"`
	Stock                       int            `db:"stock" json:"stock"`
	Category                    string         `db:"category" json:"category"`
	Description                 string         `db:"description" json:"description"`
	Seller                      string         `db:"seller" json:"seller"`
	DeliveryInfo                string         `db:"delivery_info" json:"deliveryInfo"`
	EMI                         bool           `db:"emi" json:"emi"`
	Images                      pq.StringArray `db:"images" json:"images"`
	ManufacturingDate           time.Time      `db:"manufacturing_date" json:"manufacturingDate"`
	ExpiryDate                  time.Time      `db:"expiry_date" json:"expiryDate"`
	ListingDate                 time.Time      `db:"listing_date" json:"listingDate"`
	CreatedAt                   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt                   time.Time      `db:"updated_at" json:"updatedAt"`
}
