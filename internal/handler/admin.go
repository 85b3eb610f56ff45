package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arjunmehra/dhaba/internal/admin"
	ws "github.com/arjunmehra/dhaba/internal/websocket"
)

type AdminHandler struct {
	adminSvc *admin.Service
	hub      *ws.Hub
	logger   *slog.Logger
}

func NewAdminHandler(svc *admin.Service, hub *ws.Hub, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{adminSvc: svc, hub: hub, logger: logger}
}

// Login checks the credential pair and reports success as a boolean rather
// than an error status; a wrong password is an expected outcome, not a
// failure.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	ok := h.adminSvc.Login(req.Username, req.Password)
	if ok {
		h.hub.Broadcast(ws.NewMessage("admin", "login", req.Username, nil))
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.adminSvc.Logout()
	h.hub.Broadcast(ws.NewMessage("admin", "logout", "", nil))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.adminSvc.Status()
	if err != nil {
		h.logger.Error("get admin status", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get admin status"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}
