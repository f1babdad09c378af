// internal/domain/cart/helpers.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/product"
)

// Pure cart operations. Every function returns a new Cart and never mutates
// its input; a product id that is not in the cart is a valid no-op case, not
// an error.

// AddOrUpdateItem appends a new entry with the given quantity, or, when the
// product is already in the cart, increments that entry's quantity by it.
func AddOrUpdateItem(c Cart, p product.Product, quantity int) Cart {
	if indexByProductID(c, p.ID) == -1 {
		out := make(Cart, len(c), len(c)+1)
		copy(out, c)
		return append(out, Item{Product: p, Quantity: quantity})
	}

	return updateByProductID(c, p.ID, func(item Item) Item {
		item.Quantity += quantity
		return item
	})
}

// RemoveItem excludes the entry matching productID.
func RemoveItem(c Cart, productID int) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

// UpdateItemQuantity sets the entry's quantity to exactly quantity. A
// quantity below 1 removes the entry instead.
func UpdateItemQuantity(c Cart, productID, quantity int) Cart {
	if quantity < 1 {
		return RemoveItem(c, productID)
	}

	return updateByProductID(c, productID, func(item Item) Item {
		item.Quantity = quantity
		return item
	})
}

// IncrementItemQuantity increases the entry's quantity by 1.
func IncrementItemQuantity(c Cart, productID int) Cart {
	return updateByProductID(c, productID, func(item Item) Item {
		item.Quantity++
		return item
	})
}

// DecrementItemQuantity decreases the entry's quantity by 1, removing the
// entry when its quantity was already 1 or less.
func DecrementItemQuantity(c Cart, productID int) Cart {
	index := indexByProductID(c, productID)
	if index == -1 {
		return c
	}

	if c[index].Quantity <= 1 {
		return RemoveItem(c, productID)
	}

	return updateByProductID(c, productID, func(item Item) Item {
		item.Quantity--
		return item
	})
}

// ItemQuantity returns the entry's quantity, or 0 when absent.
func ItemQuantity(c Cart, productID int) int {
	index := indexByProductID(c, productID)
	if index == -1 {
		return 0
	}
	return c[index].Quantity
}

// TotalPrice sums price * quantity over all entries; a product without a
// price contributes 0.
func TotalPrice(c Cart) float64 {
	var total float64
	for _, item := range c {
		if item.Product.Price != nil {
			total += *item.Product.Price * float64(item.Quantity)
		}
	}
	return total
}

// TotalItemsCount sums the quantities of all entries.
func TotalItemsCount(c Cart) int {
	var total int
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

func indexByProductID(c Cart, productID int) int {
	for i, item := range c {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func updateByProductID(c Cart, productID int, updateFn func(Item) Item) Cart {
	out := make(Cart, len(c))
	for i, item := range c {
		if item.Product.ID == productID {
			item = updateFn(item)
		}
		out[i] = item
	}
	return out
}
