// Package cart implements the mutation rules for a customer's cart. The
// functions here are pure; persistence and broadcast happen at the handler
// layer, which overwrites the whole cart record after every mutation.
package cart

import (
	"fmt"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
)

// NewID generates a per-session cart identifier. Relaunching a client mints
// a new id and orphans the previous cart record.
func NewID(now time.Time) string {
	return fmt.Sprintf("cart_%d", now.UnixMilli())
}

// AddItem increments the quantity of an existing line, or appends a new line
// with quantity 1.
func AddItem(items []model.CartItem, item model.MenuItem) []model.CartItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, model.CartItem{MenuItem: item, Quantity: 1})
}

// RemoveItem deletes the line with the given item id. Removing an absent
// item is a no-op, not an error.
func RemoveItem(items []model.CartItem, itemID string) []model.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or below
// removes the line, so no line is ever kept at quantity <= 0.
func UpdateQuantity(items []model.CartItem, itemID string, quantity int) []model.CartItem {
	if quantity <= 0 {
		return RemoveItem(items, itemID)
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// Total is the sum of price*quantity over all lines.
func Total(items []model.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func ItemCount(items []model.CartItem) int {
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
