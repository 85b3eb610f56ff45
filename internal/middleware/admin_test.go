package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjunmehra/dhaba/internal/database"
	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/store"
)

func setupAdminGate(t *testing.T) (*store.AdminStore, http.Handler) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	adminStore := store.NewAdminStore(db)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return adminStore, RequireAdmin(adminStore)(next)
}

func TestRequireAdminForbidsWhenLoggedOut(t *testing.T) {
	_, h := setupAdminGate(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/orders/ORD1/status", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAdminPassesWhenLoggedIn(t *testing.T) {
	adminStore, h := setupAdminGate(t)

	if err := adminStore.Set(model.AdminStatus{IsLoggedIn: true, AdminUser: "admin"}); err != nil {
		t.Fatalf("set admin status: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/orders/ORD1/status", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
