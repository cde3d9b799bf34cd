package products

import (
	"math"
	"testing"

	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return d
}

func TestCatalogAddAssignsSequentialIDs(t *testing.T) {
	c := NewCatalog()

	widget, err := c.Add("Widget", 5, price(t, "10.00"), "")
	require.NoError(t, err)
	gadget, err := c.Add("  Gadget ", 0, decimal.Zero, "Tools")
	require.NoError(t, err)

	assert.Equal(t, "PROD-1", widget.ID)
	assert.Equal(t, "PROD-2", gadget.ID)
	assert.Equal(t, DefaultCategory, widget.Category)
	assert.Equal(t, "Gadget", gadget.Name)
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, "50", widget.Total().String())
}

func TestCatalogAddRejectsInvalidInput(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name     string
		product  string
		quantity int
		price    decimal.Decimal
	}{
		{"negative quantity", "Widget", -1, decimal.NewFromInt(1)},
		{"negative price", "Widget", 1, decimal.NewFromInt(-1)},
		{"blank name", "   ", 1, decimal.NewFromInt(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Add(tt.product, tt.quantity, tt.price, "")
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
		})
	}
	assert.Zero(t, c.Count())

	p, err := c.Add("Widget", 1, decimal.NewFromInt(1), "")
	require.NoError(t, err)
	assert.Equal(t, "PROD-1", p.ID, "failed adds must not consume identifiers")
}

func TestCatalogIDsAreNeverReused(t *testing.T) {
	c := NewCatalog()
	first, _ := c.Add("A", 1, decimal.Zero, "")
	require.True(t, c.Remove(first.ID))

	second, err := c.Add("B", 1, decimal.Zero, "")
	require.NoError(t, err)
	assert.Equal(t, "PROD-2", second.ID)

	_, ok := c.FindByID(first.ID)
	assert.False(t, ok)
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalog()
	_, _ = c.Add("Laptop", 5, price(t, "999.99"), "Electronics")
	_, _ = c.Add("Mouse", 20, price(t, "29.99"), "Electronics")
	_, _ = c.Add("Gaming LAPTOP stand", 3, price(t, "45"), "Furniture")

	hits := c.FindByNameSubstring("laptop")
	require.Len(t, hits, 2)
	assert.Equal(t, "Laptop", hits[0].Name)
	assert.Equal(t, "Gaming LAPTOP stand", hits[1].Name)

	assert.Len(t, c.FindByCategory("Electronics"), 2)
	assert.Empty(t, c.FindByCategory("electronics"), "category match is exact")
	assert.NotNil(t, c.FindByNameSubstring("nothing"))
	assert.Len(t, c.FindByNameSubstring(""), 3)
}

func TestCatalogSetQuantity(t *testing.T) {
	c := NewCatalog()
	p, _ := c.Add("Widget", 5, decimal.NewFromInt(1), "")

	ok, err := c.SetQuantity(p.ID, 12)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := c.FindByID(p.ID)
	assert.Equal(t, 12, got.Quantity)

	ok, err = c.SetQuantity("PROD-99", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.SetQuantity(p.ID, -1)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	got, _ = c.FindByID(p.ID)
	assert.Equal(t, 12, got.Quantity)
}

func TestCatalogAdjustQuantity(t *testing.T) {
	c := NewCatalog()
	p, _ := c.Add("Widget", 5, decimal.NewFromInt(1), "")

	q, err := c.AdjustQuantity(p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, q)

	q, err = c.AdjustQuantity(p.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, q)

	_, err = c.AdjustQuantity(p.ID, -13)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInsufficientStock))
	got, _ := c.FindByID(p.ID)
	assert.Equal(t, 12, got.Quantity)

	_, err = c.AdjustQuantity("PROD-404", 1)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	_, err = c.AdjustQuantity(p.ID, math.MaxInt)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	got, _ = c.FindByID(p.ID)
	assert.Equal(t, 12, got.Quantity)
}

func TestCatalogAllReturnsSnapshot(t *testing.T) {
	c := NewCatalog()
	_, _ = c.Add("A", 1, decimal.Zero, "")
	_, _ = c.Add("B", 2, decimal.Zero, "")

	all := c.All()
	all[0].Quantity = 100

	stored, _ := c.FindByID("PROD-1")
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, []string{"PROD-1", "PROD-2"}, []string{all[0].ID, all[1].ID})
}

func TestCatalogRemoveKeepsOrder(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = c.Add(name, 1, decimal.Zero, "")
	}
	assert.True(t, c.Remove("PROD-2"))
	assert.False(t, c.Remove("PROD-2"))

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "C", all[1].Name)
}

func TestCatalogReset(t *testing.T) {
	c := NewCatalog()
	_, _ = c.Add("A", 1, decimal.Zero, "")
	c.Reset()
	assert.Zero(t, c.Count())

	p, _ := c.Add("B", 1, decimal.Zero, "")
	assert.Equal(t, "PROD-1", p.ID)
}

func TestProductEqualityByID(t *testing.T) {
	a := Product{ID: "PROD-1", Name: "A", Quantity: 1}
	b := Product{ID: "PROD-1", Name: "renamed", Quantity: 9}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Product{ID: "PROD-2"}))
}

func TestNewProductDTOIncludesTotal(t *testing.T) {
	dto := NewProductDTO(Product{ID: "PROD-1", Name: "Widget", Quantity: 3, Price: price(t, "2.50"), Category: "General"})
	assert.True(t, dto.Total.Equal(price(t, "7.50")))
	assert.Len(t, NewProductDTOs(nil), 0)
}
