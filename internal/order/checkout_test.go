package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunmehra/dhaba/internal/model"
)

func sampleCart() model.Cart {
	return model.Cart{
		ID: "cart_1700000000000",
		Items: []model.CartItem{
			{MenuItem: model.MenuItem{ID: "1", Name: "Paneer Tikka", Price: 200, Category: "Starters", Available: true}, Quantity: 1},
			{MenuItem: model.MenuItem{ID: "10", Name: "French Fries", Price: 60, Category: "Fast Food", Available: true}, Quantity: 2},
		},
		TableNumber: "5",
	}
}

func TestFromCart(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	o, err := FromCart(sampleCart(), "9876543210", now)
	require.NoError(t, err)

	assert.Equal(t, "ORD1700000000123", o.ID)
	assert.Equal(t, string(StatusReceived), o.Status)
	assert.Equal(t, PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, 320.0, o.Total)
	assert.Equal(t, "5", o.TableNumber)
	assert.Equal(t, "9876543210", o.CustomerPhone)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, now.UTC(), o.Timestamp)
}

func TestFromCartEmptyCartRejected(t *testing.T) {
	c := model.Cart{ID: "cart_1", TableNumber: "3"}

	_, err := FromCart(c, "9876543210", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestFromCartPhoneValidation(t *testing.T) {
	for _, phone := range []string{"", "12345", "12345678901", "98765abc10", "987654321 "} {
		_, err := FromCart(sampleCart(), phone, time.Now())
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q should be rejected", phone)
	}
}

func TestFromCartRejectsBeforeMutating(t *testing.T) {
	c := sampleCart()
	_, err := FromCart(c, "bad", time.Now())
	require.Error(t, err)
	assert.Len(t, c.Items, 2, "cart untouched on validation failure")
}

func TestSnapshotIsolation(t *testing.T) {
	c := sampleCart()

	o, err := FromCart(c, "9876543210", time.Now())
	require.NoError(t, err)

	// Mutate the cart after checkout; the order must not observe it.
	c.Items[0].Quantity = 99
	c.Items = c.Items[:1]

	assert.Len(t, o.Items, 2)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, 320.0, o.Total)
}

func TestNewIDFormat(t *testing.T) {
	id := NewID(time.UnixMilli(42))
	assert.Equal(t, "ORD42", id)
}
