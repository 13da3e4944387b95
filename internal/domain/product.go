package domain

import "math"

// Product represents a product in the catalog. The catalog is defined
// entirely at startup; products are never created, mutated, or deleted
// at runtime.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice,omitempty"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
}

// EffectivePrice returns the discounted price when one is set, otherwise
// the regular price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// DiscountPercent returns the discount as a rounded percentage of the
// regular price, or 0 when the product is not discounted.
func (p Product) DiscountPercent() int {
	if p.DiscountPrice <= 0 || p.Price <= 0 {
		return 0
	}
	return int(math.Round((p.Price - p.DiscountPrice) / p.Price * 100))
}

// InStock reports whether the product has any remaining stock.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CartItem associates a product with a quantity. A cart holds at most
// one CartItem per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line total at the product's effective price.
func (i CartItem) Subtotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}
