package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/arjunmehra/dhaba/internal/store"
)

// RequireAdmin gates management routes on the mirrored staff login flag.
// Every client shares the one flag; there is no per-session identity. This
// matches the dashboard's placeholder login and is not a security boundary.
func RequireAdmin(adminStore *store.AdminStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			status, err := adminStore.Get()
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "failed to read admin status"})
				return
			}
			if !status.IsLoggedIn {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "admin login required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
