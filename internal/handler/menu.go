package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/arjunmehra/dhaba/internal/menu"
	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/store"
	ws "github.com/arjunmehra/dhaba/internal/websocket"
)

type MenuHandler struct {
	menuStore *store.MenuStore
	hub       *ws.Hub
	logger    *slog.Logger
}

func NewMenuHandler(ms *store.MenuStore, hub *ws.Hub, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{menuStore: ms, hub: hub, logger: logger}
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

func (r *menuItemRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "name is required"
	}
	if r.Price < 0 {
		return "price must not be negative"
	}
	if r.Category == "" {
		r.Category = menu.SuggestCategory(r.Name)
	}
	if !menu.ValidCategory(r.Category) {
		return "unknown category"
	}
	return ""
}

// List serves the catalog sorted by category then name. When the store
// cannot be read, or holds nothing, the static seed catalog is served
// instead so customers always see a menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuStore.List()
	if err != nil {
		h.logger.Warn("menu read failed, serving seed catalog", "error", err)
		items = menu.Seed()
	}
	if len(items) == 0 {
		items = menu.Seed()
	}

	if r.URL.Query().Get("available") == "true" {
		available := items[:0]
		for _, item := range items {
			if item.Available {
				available = append(available, item)
			}
		}
		items = available
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menu.Categories)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item, err := h.menuStore.Create(model.MenuItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Available:   available,
	})
	if err != nil {
		h.logger.Error("create menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("menu_item", "created", item.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.menuStore.GetByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	available := existing.Available
	if req.Available != nil {
		available = *req.Available
	}
	item, err := h.menuStore.Update(model.MenuItem{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Available:   available,
	})
	if err != nil {
		h.logger.Error("update menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("menu_item", "updated", item.ID, nil))
	writeJSON(w, http.StatusOK, item)
}

// SetAvailability toggles the soft availability flag without removing the
// item from the admin view.
func (h *MenuHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, err := h.menuStore.SetAvailable(id, req.Available)
	if err != nil {
		h.logger.Error("set availability", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("menu_item", "updated", item.ID, map[string]any{"available": item.Available}))
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.menuStore.GetByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	if err := h.menuStore.Delete(id); err != nil {
		h.logger.Error("delete menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("menu_item", "deleted", id, nil))
	w.WriteHeader(http.StatusNoContent)
}
