package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/arjunmehra/dhaba/internal/cart"
	"github.com/arjunmehra/dhaba/internal/model"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")
)

// NewID generates an order id from the creation time. Two orders created in
// the same millisecond would collide; the original scheme carries that risk
// and no uniqueness check is layered on top of it.
func NewID(now time.Time) string {
	return fmt.Sprintf("ORD%d", now.UnixMilli())
}

// FromCart builds an order from a cart snapshot at checkout confirmation.
// The cart must be non-empty and the phone number exactly 10 digits; table
// number is optional and unvalidated. Items are deep-copied so later cart
// mutations never touch the order, and the total is the cart's leading total
// at this moment, not recomputed afterward.
func FromCart(c model.Cart, customerPhone string, now time.Time) (model.Order, error) {
	if len(c.Items) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	if !validPhone(customerPhone) {
		return model.Order{}, ErrInvalidPhone
	}

	items := make([]model.CartItem, len(c.Items))
	copy(items, c.Items)

	return model.Order{
		ID:            NewID(now),
		TableNumber:   c.TableNumber,
		Items:         items,
		Total:         cart.Total(c.Items),
		Status:        string(StatusReceived),
		Timestamp:     now.UTC(),
		PaymentStatus: PaymentCompleted,
		CustomerPhone: customerPhone,
	}, nil
}

func validPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
