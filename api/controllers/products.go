package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/inventory-backend/api/responses"
	"github.com/angelmondragon/inventory-backend/api/validators"
	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/internal/products"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
)

const (
	maxQueryLength = 100
	maxNameLength  = 200
)

// ListProducts returns the catalog in insertion order, optionally narrowed to
// one category.
func ListProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var list []products.Product
		if category := validators.ParseQueryString(r, "category", maxQueryLength); category != "" {
			list = svc.ListProductsByCategory(r.Context(), category)
		} else {
			list = svc.ListProducts(r.Context())
		}
		responses.WriteSuccess(w, products.NewProductDTOs(list))
	}
}

// SearchProducts matches ?q= against product names, case-insensitively.
func SearchProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		query, err := validators.RequireQueryString(r, "q", maxQueryLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products.NewProductDTOs(svc.SearchProductsByName(r.Context(), query)))
	}
}

func CreateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.AddProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Location", "/api/v1/products/"+product.ID)
		responses.WriteSuccessStatus(w, http.StatusCreated, products.NewProductDTO(product))
	}
}

type createProductRequest struct {
	Name     string           `json:"name" validate:"required,max=200"`
	Quantity *int             `json:"quantity" validate:"required,min=0"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Category string           `json:"category" validate:"omitempty,max=100"`
}

func (r createProductRequest) toInput() inventory.AddProductInput {
	return inventory.AddProductInput{
		Name:     validators.SanitizeString(r.Name, maxNameLength),
		Quantity: *r.Quantity,
		Price:    *r.Price,
		Category: validators.SanitizeString(r.Category, maxQueryLength),
	}
}

func GetProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products.NewProductDTO(product))
	}
}

func DeleteProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.RemoveProduct(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// UpdateProductQuantity overwrites the stock level of a product.
func UpdateProductQuantity(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateQuantity(r.Context(), productID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products.NewProductDTO(product))
	}
}

// RestockProduct adds units to a product.
func RestockProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustStock(svc, logg, false)
}

// WithdrawProduct removes units from a product outside of an order.
func WithdrawProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustStock(svc, logg, true)
}

type stockAdjustment struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func adjustStock(svc inventory.Service, logg *logger.Logger, withdraw bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var quantity int
		if withdraw {
			quantity, err = svc.Withdraw(r.Context(), productID, *payload.Quantity)
		} else {
			quantity, err = svc.Restock(r.Context(), productID, *payload.Quantity)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stockAdjustment{ProductID: productID, Quantity: quantity})
	}
}

func productIDParam(r *http.Request) (string, error) {
	productID := strings.TrimSpace(chi.URLParam(r, "productId"))
	if productID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "product id is required").WithDetails(map[string]any{"field": "productId"})
	}
	return productID, nil
}
