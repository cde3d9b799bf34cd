package controllers

import (
	"net/http"

	"github.com/angelmondragon/inventory-backend/api/responses"
	"github.com/angelmondragon/inventory-backend/api/validators"
	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
)

const maxProcessedLimit = 1000

type createOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,max=100"`
	Items      []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

func (r createOrderRequest) toItems() []inventory.OrderItemInput {
	items := make([]inventory.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, inventory.OrderItemInput{
			ProductID: validators.SanitizeString(item.ProductID, 0),
			Quantity:  item.Quantity,
		})
	}
	return items
}

// CreateOrder reserves stock for every line and enqueues the order. Nothing
// is reserved when any line fails.
func CreateOrder(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), payload.CustomerID, payload.toItems())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, orders.NewOrderDTO(order))
	}
}

// ProcessNextOrder handles the oldest pending order.
func ProcessNextOrder(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		order, err := svc.ProcessNextOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.NewOrderDTO(order))
	}
}

func PeekNextOrder(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		order, err := svc.PeekNextOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.NewOrderDTO(order))
	}
}

// ListProcessedOrders returns the processed log in processing order. ?limit=n
// keeps only the n most recent entries.
func ListProcessedOrders(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxProcessedLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list := svc.ListProcessedOrders(r.Context())
		if limit > 0 && len(list) > limit {
			list = list[len(list)-limit:]
		}
		responses.WriteSuccess(w, orders.NewOrderDTOs(list))
	}
}
