package seed

import (
	"context"
	"fmt"

	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/internal/products"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// SampleProducts is the demo catalog loaded on startup when sample data is
// enabled.
var SampleProducts = []inventory.AddProductInput{
	{Name: "Laptop", Quantity: 5, Price: decimal.RequireFromString("999.99"), Category: "Electrónica"},
	{Name: "Mouse", Quantity: 20, Price: decimal.RequireFromString("29.99"), Category: "Electrónica"},
	{Name: "Teclado", Quantity: 15, Price: decimal.RequireFromString("79.99"), Category: "Electrónica"},
	{Name: "Arroz 1kg", Quantity: 50, Price: decimal.RequireFromString("2.50"), Category: "Alimentos"},
	{Name: "Frijoles 1kg", Quantity: 30, Price: decimal.RequireFromString("3.00"), Category: "Alimentos"},
	{Name: "Camisa", Quantity: 25, Price: decimal.RequireFromString("45.00"), Category: "Ropa"},
	{Name: "Pantalón", Quantity: 18, Price: decimal.RequireFromString("65.00"), Category: "Ropa"},
	{Name: "JavaScript Básico", Quantity: 8, Price: decimal.RequireFromString("29.99"), Category: "Libros"},
}

// ProductAdder is the part of inventory.Service the loader needs.
type ProductAdder interface {
	AddProduct(ctx context.Context, input inventory.AddProductInput) (products.Product, error)
}

// LoadSampleData adds SampleProducts in order. A rejected product does not
// stop the rest; every failure is returned combined.
func LoadSampleData(ctx context.Context, svc ProductAdder, logg *logger.Logger) ([]products.Product, error) {
	if svc == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if logg == nil {
		logg = logger.Nop()
	}

	var errs error
	added := make([]products.Product, 0, len(SampleProducts))
	for _, input := range SampleProducts {
		if err := ctx.Err(); err != nil {
			return added, multierr.Append(errs, err)
		}
		p, err := svc.AddProduct(ctx, input)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed product %q: %w", input.Name, err))
			continue
		}
		added = append(added, p)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"products": len(added),
		"failed":   len(multierr.Errors(errs)),
	})
	if errs != nil {
		logg.Warn(ctx, "seed.sample_data_partial")
		return added, errs
	}
	logg.Info(ctx, "seed.sample_data_loaded")
	return added, nil
}
