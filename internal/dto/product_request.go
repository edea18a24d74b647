package dto

// ProductRequest carries the admin form payload. Numeric and date fields
// arrive as strings and are coerced once by the service before the
// relational write; the document store receives the fields exactly as
// submitted.
type ProductRequest struct {
	ID                          string   `json:"id"`
	ProductName                 string   `json:"productName"`
	Brand                       string   `json:"brand"`
	Price                       string   `json:"price"`
	MarketPrice                 string   `json:"marketPrice"`
	PercentageOfDiscountOffered string   `json:"percentageOfDiscountOffered"`
	Stock                       string   `json:"stock"`
	Category                    string   `json:"category"`
	Description                 string   `json:"description"`
	Seller                      string   `json:"seller"`
	DeliveryInfo                string   `json:"deliveryInfo"`
	EMI                         bool     `json:"emi"`
	Images                      []string `json:"images"`
	ManufacturingDate           string   `json:"manufacturingDate"`
	ExpiryDate                  string   `json:"expiryDate"`
	ListingDate                 string   `json:"listingDate"`
}

// Document returns the un-coerced field set mirrored to the document store.
func (r ProductRequest) Document() map[string]interface{} {
	return map[string]interface{}{
		"productName":                 r.ProductName,
		"brand":                       r.Brand,
		"price":                       r.Price,
		"marketPrice":                 r.MarketPrice,
		"percentageOfDiscountOffered": r.PercentageOfDiscountOffered,
		"stock":                       r.Stock,
		"category":                    r.Category,
		"description":                 r.Description,
		"seller":                      r.Seller,
		"deliveryInfo":                r.DeliveryInfo,
		"emi":                         r.EMI,
		"images":                      r.Images,
		"manufacturingDate":           r.ManufacturingDate,
		"expiryDate":                  r.ExpiryDate,
		"listingDate":                 r.ListingDate,
	}
}
