package products

import "github.com/shopspring/decimal"

// ProductDTO is the product payload returned to API clients.
type ProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

func NewProductDTO(p Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
		Category: p.Category,
		Total:    p.Total(),
	}
}

func NewProductDTOs(items []Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(items))
	for _, p := range items {
		out = append(out, NewProductDTO(p))
	}
	return out
}
