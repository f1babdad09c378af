// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/product"
)

// Item is one cart entry. Quantity is always >= 1: any operation that would
// drive it below 1 removes the entry instead.
type Item struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered collection of items, at most one per product id, in the
// order products were first added.
type Cart []Item
