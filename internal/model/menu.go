package model

// MenuItem is a purchasable item in the restaurant catalog.
// Identity is the string id; seed items use numeric ids, admin-added
// items get generated keys.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
}
