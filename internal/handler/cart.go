package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/arjunmehra/dhaba/internal/cart"
	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/store"
	ws "github.com/arjunmehra/dhaba/internal/websocket"
)

type CartHandler struct {
	cartStore *store.CartStore
	menuStore *store.MenuStore
	hub       *ws.Hub
	logger    *slog.Logger
}

func NewCartHandler(cs *store.CartStore, ms *store.MenuStore, hub *ws.Hub, logger *slog.Logger) *CartHandler {
	return &CartHandler{cartStore: cs, menuStore: ms, hub: hub, logger: logger}
}

// cartResponse is the cart snapshot plus its derived read-only values.
type cartResponse struct {
	model.Cart
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

func newCartResponse(c model.Cart) cartResponse {
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	return cartResponse{Cart: c, Total: cart.Total(c.Items), ItemCount: cart.ItemCount(c.Items)}
}

// Create mints a fresh session cart id. The record itself is created lazily
// on the first mutation.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := cart.NewID(time.Now())
	writeJSON(w, http.StatusCreated, newCartResponse(model.Cart{ID: id}))
}

// Get returns the cart for a session id. A session that never wrote
// anything gets an empty cart back, not an error.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")

	c, err := h.cartStore.Get(id)
	if err != nil {
		h.logger.Error("get cart", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}
	if c == nil {
		c = &model.Cart{ID: id}
	}
	writeJSON(w, http.StatusOK, newCartResponse(*c))
}

// load fetches the current cart snapshot, treating a missing record as an
// implicitly created empty cart.
func (h *CartHandler) load(id string) (model.Cart, error) {
	c, err := h.cartStore.Get(id)
	if err != nil {
		return model.Cart{}, err
	}
	if c == nil {
		return model.Cart{ID: id}, nil
	}
	return *c, nil
}

// persist overwrites the stored snapshot and notifies subscribers. A write
// failure is logged and otherwise ignored; the returned snapshot stays the
// visible truth for the calling client.
func (h *CartHandler) persist(c model.Cart) {
	if err := h.cartStore.Save(c); err != nil {
		h.logger.Error("save cart", "cart_id", c.ID, "error", err)
	}
	h.hub.Broadcast(ws.NewMessage("cart", "updated", c.ID, nil))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")

	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, err := h.menuStore.GetByID(req.ItemID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get menu item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	c, err := h.load(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}

	c.Items = cart.AddItem(c.Items, *item)
	h.persist(c)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")
	itemID := r.PathValue("item_id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.load(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}

	c.Items = cart.UpdateQuantity(c.Items, itemID, req.Quantity)
	h.persist(c)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")
	itemID := r.PathValue("item_id")

	c, err := h.load(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}

	// Removing an absent line is a no-op, not an error.
	c.Items = cart.RemoveItem(c.Items, itemID)
	h.persist(c)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// Clear empties the item list and keeps the table number.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")

	c, err := h.load(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}

	c.Items = nil
	h.persist(c)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// SetTable stores a free-form table number; any validation belongs to the
// QR scanner or checkout surface, not here.
func (h *CartHandler) SetTable(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cart_id")

	var req struct {
		TableNumber string `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.load(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get cart"})
		return
	}

	c.TableNumber = req.TableNumber
	h.persist(c)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}
