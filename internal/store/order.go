package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

func scanOrder(scanner interface{ Scan(...any) error }) (*model.Order, error) {
	var o model.Order
	var tableNumber, customerPhone sql.NullString
	var itemsJSON, createdAt string

	err := scanner.Scan(&o.ID, &tableNumber, &itemsJSON, &o.Total, &o.Status, &o.PaymentStatus, &customerPhone, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	// Timestamps are stored as RFC3339 strings; that is the canonical wire
	// representation for order creation time.
	o.Timestamp, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse order timestamp: %w", err)
	}
	o.TableNumber = tableNumber.String
	o.CustomerPhone = customerPhone.String
	return &o, nil
}

const orderCols = `id, table_number, items, total, status, payment_status, customer_phone, created_at`

// timeFormat is RFC3339 with fixed-width nanoseconds so stored strings sort
// lexically in creation order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Create inserts the order exactly once. Orders are never deleted and only
// the status column is updated afterward.
func (s *OrderStore) Create(o model.Order) (*model.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO orders (id, table_number, items, total, status, payment_status, customer_phone, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, nullString(o.TableNumber), string(itemsJSON), o.Total, o.Status, o.PaymentStatus, nullString(o.CustomerPhone),
		o.Timestamp.UTC().Format(timeFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return s.GetByID(o.ID)
}

func (s *OrderStore) GetByID(id string) (*model.Order, error) {
	row := s.db.QueryRow(`SELECT `+orderCols+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List returns all orders newest first, the dashboard display order.
func (s *OrderStore) List() ([]model.Order, error) {
	rows, err := s.db.Query(`SELECT ` + orderCols + ` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateStatus overwrites the status field. Any known status value is
// accepted regardless of the order's current status; forward-only
// progression is a dashboard convention, not enforced here.
func (s *OrderStore) UpdateStatus(id string, status string) (*model.Order, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	_, err = s.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return s.GetByID(id)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
