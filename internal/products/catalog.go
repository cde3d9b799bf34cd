package products

import (
	"fmt"
	"math"
	"strings"

	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

const idPrefix = "PROD-"

// Catalog is the ordered product collection. It is not safe for concurrent
// use; the inventory manager serializes access.
type Catalog struct {
	items  []Product
	nextID int
}

func NewCatalog() *Catalog {
	return &Catalog{nextID: 1}
}

// Add validates and appends a new product, assigning the next identifier.
func (c *Catalog) Add(name string, quantity int, price decimal.Decimal, category string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product name is required").
			WithDetails(map[string]any{"field": "name"})
	}
	if quantity < 0 {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative").
			WithDetails(map[string]any{"field": "quantity", "value": quantity})
	}
	if price.IsNegative() {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative").
			WithDetails(map[string]any{"field": "price", "value": price.String()})
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	p := Product{
		ID:       fmt.Sprintf("%s%d", idPrefix, c.nextID),
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Category: category,
	}
	c.nextID++
	c.items = append(c.items, p)
	return p, nil
}

func (c *Catalog) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByID returns a copy of the product with the given identifier.
func (c *Catalog) FindByID(id string) (Product, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Product{}, false
}

// FindByNameSubstring matches query against product names, case-insensitively,
// in insertion order.
func (c *Catalog) FindByNameSubstring(query string) []Product {
	needle := strings.ToLower(query)
	return c.filter(func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// FindByCategory returns products whose category equals category exactly.
func (c *Catalog) FindByCategory(category string) []Product {
	return c.filter(func(p Product) bool {
		return p.Category == category
	})
}

// SetQuantity overwrites the stock of a product. It reports false when the
// product does not exist.
func (c *Catalog) SetQuantity(id string, quantity int) (bool, error) {
	if quantity < 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative").
			WithDetails(map[string]any{"field": "quantity", "value": quantity})
	}
	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.items[i].Quantity = quantity
	return true, nil
}

// AdjustQuantity adds delta (negative to reserve, positive to restock) and
// returns the resulting quantity. Stock never goes below zero.
func (c *Catalog) AdjustQuantity(id string, delta int) (int, error) {
	i := c.indexOf(id)
	if i < 0 {
		return 0, NotFoundError(id)
	}
	if delta > 0 && c.items[i].Quantity > math.MaxInt-delta {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds maximum stock").
			WithDetails(map[string]any{"field": "quantity", "value": delta})
	}
	next := c.items[i].Quantity + delta
	if next < 0 {
		return 0, InsufficientStockError(c.items[i], -delta)
	}
	c.items[i].Quantity = next
	return next, nil
}

// Remove deletes the product; false when absent.
func (c *Catalog) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// All returns a snapshot of every product in insertion order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Count() int {
	return len(c.items)
}

// Reset drops every product and restarts identifier assignment.
func (c *Catalog) Reset() {
	c.items = nil
	c.nextID = 1
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	out := make([]Product, 0)
	for _, p := range c.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// NotFoundError is returned when an identifier does not resolve to a product.
func NotFoundError(id string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id)).
		WithDetails(map[string]any{"product_id": id})
}

// InsufficientStockError describes a request for more units than p holds.
func InsufficientStockError(p Product, requested int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, fmt.Sprintf("insufficient stock for %s", p.Name)).
		WithDetails(map[string]any{
			"product_id": p.ID,
			"requested":  requested,
			"available":  p.Quantity,
		})
}
