package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
)

// CartStore persists carts as whole-record snapshots keyed by session id.
// Every save overwrites the full record; concurrent writers are last write
// wins with no versioning.
type CartStore struct {
	db *sql.DB
}

func NewCartStore(db *sql.DB) *CartStore {
	return &CartStore{db: db}
}

// Get returns the cart for the given session id, or nil if no record exists.
func (s *CartStore) Get(id string) (*model.Cart, error) {
	var itemsJSON string
	var tableNumber string

	err := s.db.QueryRow(`SELECT items, table_number FROM carts WHERE id = ?`, id).Scan(&itemsJSON, &tableNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart items: %w", err)
	}

	return &model.Cart{ID: id, Items: items, TableNumber: tableNumber}, nil
}

// Save overwrites the cart record wholesale, creating it if absent.
func (s *CartStore) Save(c model.Cart) error {
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("marshal cart items: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO carts (id, items, table_number, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET items = excluded.items, table_number = excluded.table_number, updated_at = excluded.updated_at`,
		c.ID, string(itemsJSON), c.TableNumber, time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
