package model

import "time"

// Order is created once at checkout from a cart snapshot. Everything but
// Status is immutable after creation; orders are never deleted.
type Order struct {
	ID            string     `json:"id"`
	TableNumber   string     `json:"tableNumber,omitempty"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
	PaymentStatus string     `json:"paymentStatus"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
}
