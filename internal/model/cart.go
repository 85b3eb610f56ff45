package model

// CartItem is a menu item plus the quantity selected. Quantity is never
// persisted at zero or below; a decrement to zero removes the line.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart is the per-session collection of selected items awaiting checkout.
// The whole record is overwritten on every mutation (last write wins).
type Cart struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TableNumber string     `json:"tableNumber"`
}
