package products

import (
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned when a product is added without one.
const DefaultCategory = "General"

// Product is a catalog entry. Values handed out by the Catalog are copies;
// mutating them never changes stored stock.
type Product struct {
	ID       string
	Name     string
	Quantity int
	Price    decimal.Decimal
	Category string
}

// Total is the stock value of the product: quantity times unit price.
func (p Product) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Equal compares products by identifier only.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID
}
