package store

import (
	"database/sql"
	"fmt"

	"github.com/arjunmehra/dhaba/internal/model"
)

type MenuStore struct {
	db *sql.DB
}

func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

func scanMenuItem(scanner interface{ Scan(...any) error }) (*model.MenuItem, error) {
	var item model.MenuItem
	var available int

	err := scanner.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Description, &item.Image, &available)
	if err != nil {
		return nil, err
	}
	item.Available = available != 0
	return &item, nil
}

const menuItemCols = `id, name, price, category, description, image, available`

// List returns all menu items sorted by category then name, the display
// order used by both the customer menu and the admin management view.
func (s *MenuStore) List() ([]model.MenuItem, error) {
	rows, err := s.db.Query(`SELECT ` + menuItemCols + ` FROM menu_items ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *MenuStore) GetByID(id string) (*model.MenuItem, error) {
	row := s.db.QueryRow(`SELECT `+menuItemCols+` FROM menu_items WHERE id = ?`, id)
	item, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (s *MenuStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return count, nil
}

func (s *MenuStore) Create(item model.MenuItem) (*model.MenuItem, error) {
	_, err := s.db.Exec(
		`INSERT INTO menu_items (id, name, price, category, description, image, available) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Price, item.Category, item.Description, item.Image, boolToInt(item.Available),
	)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return s.GetByID(item.ID)
}

func (s *MenuStore) Update(item model.MenuItem) (*model.MenuItem, error) {
	_, err := s.db.Exec(
		`UPDATE menu_items SET name = ?, price = ?, category = ?, description = ?, image = ?, available = ? WHERE id = ?`,
		item.Name, item.Price, item.Category, item.Description, item.Image, boolToInt(item.Available), item.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return s.GetByID(item.ID)
}

// SetAvailable toggles the soft availability flag; the item stays in the
// catalog for the admin view either way.
func (s *MenuStore) SetAvailable(id string, available bool) (*model.MenuItem, error) {
	_, err := s.db.Exec(`UPDATE menu_items SET available = ? WHERE id = ?`, boolToInt(available), id)
	if err != nil {
		return nil, fmt.Errorf("set available: %w", err)
	}
	return s.GetByID(id)
}

func (s *MenuStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// Initialize seeds the catalog if and only if it is empty. The check and the
// writes are not one transaction against concurrent initializers; that
// mirrors the original behavior and is idempotent only because every caller
// seeds identical data.
func (s *MenuStore) Initialize(seed []model.MenuItem) (bool, error) {
	count, err := s.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, item := range seed {
		if _, err := s.Create(item); err != nil {
			return false, fmt.Errorf("seed menu item %s: %w", item.ID, err)
		}
	}
	return true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
