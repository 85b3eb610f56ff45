package store

import (
	"database/sql"
	"fmt"

	"github.com/arjunmehra/dhaba/internal/model"
)

// AdminStore mirrors the singleton staff login flag. The migration seeds the
// single row, so Get never sees an empty table.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) Get() (model.AdminStatus, error) {
	var st model.AdminStatus
	var loggedIn int

	err := s.db.QueryRow(`SELECT is_logged_in, admin_user FROM admin_status WHERE id = 1`).Scan(&loggedIn, &st.AdminUser)
	if err != nil {
		return model.AdminStatus{}, fmt.Errorf("get admin status: %w", err)
	}
	st.IsLoggedIn = loggedIn != 0
	return st, nil
}

func (s *AdminStore) Set(st model.AdminStatus) error {
	_, err := s.db.Exec(`UPDATE admin_status SET is_logged_in = ?, admin_user = ? WHERE id = 1`, boolToInt(st.IsLoggedIn), st.AdminUser)
	if err != nil {
		return fmt.Errorf("set admin status: %w", err)
	}
	return nil
}
