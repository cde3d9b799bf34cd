package inventory

import (
	"fmt"

	"github.com/angelmondragon/inventory-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
)

func invalidArgument(message string, details map[string]any) *pkgerrors.Error {
	err := pkgerrors.New(pkgerrors.CodeValidation, message)
	if details != nil {
		err = err.WithDetails(details)
	}
	return err
}

func productNotFoundInOrder(productID string, line int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeProductNotFound, fmt.Sprintf("product %s does not exist", productID)).
		WithDetails(map[string]any{"product_id": productID, "line": line})
}

func noPendingOrders() *pkgerrors.Error {
	return pkgerrors.Wrap(pkgerrors.CodeNoPendingOrders, orders.ErrEmptyQueue, "no pending orders")
}
