package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/notify"
	"github.com/arjunmehra/dhaba/internal/order"
	"github.com/arjunmehra/dhaba/internal/store"
	ws "github.com/arjunmehra/dhaba/internal/websocket"
)

type OrderHandler struct {
	orderStore *store.OrderStore
	cartStore  *store.CartStore
	notifier   *notify.Service
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewOrderHandler(os *store.OrderStore, cs *store.CartStore, notifier *notify.Service, hub *ws.Hub, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orderStore: os, cartStore: cs, notifier: notifier, hub: hub, logger: logger}
}

type checkoutRequest struct {
	CartID        string `json:"cart_id"`
	CustomerPhone string `json:"customer_phone"`
	TableNumber   string `json:"table_number"`
}

// Create is the checkout confirmation: it snapshots the cart into an
// immutable order, clears the cart, and fires the outbound notification.
// Both payment entry points land here; payment itself is simulated and
// always recorded as completed.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.cartStore.Get(req.CartID)
	if err != nil {
		h.logger.Error("load cart for checkout", "cart_id", req.CartID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load cart"})
		return
	}
	if c == nil {
		c = &model.Cart{ID: req.CartID}
	}
	if req.TableNumber != "" {
		c.TableNumber = req.TableNumber
	}

	o, err := order.FromCart(*c, req.CustomerPhone, time.Now())
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) || errors.Is(err, order.ErrInvalidPhone) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		h.logger.Error("build order", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create order"})
		return
	}

	// Order creation is awaited; the client shows its confirmation only
	// after the record is durable.
	created, err := h.orderStore.Create(o)
	if err != nil {
		h.logger.Error("create order", "order_id", o.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create order"})
		return
	}

	// Clear the cart, keeping the table number. A failure here is logged
	// and ignored; the order already exists.
	c.Items = nil
	if err := h.cartStore.Save(*c); err != nil {
		h.logger.Error("clear cart after checkout", "cart_id", c.ID, "error", err)
	}
	h.hub.Broadcast(ws.NewMessage("cart", "updated", c.ID, nil))
	h.hub.Broadcast(ws.NewMessage("order", "created", created.ID, map[string]any{"total": created.Total}))

	// Outbound alerts are fire-and-forget.
	go h.notifier.OrderCreated(*created)

	writeJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderStore.List()
	if err != nil {
		h.logger.Error("list orders", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list orders"})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	o, err := h.orderStore.GetByID(id)
	if err != nil {
		h.logger.Error("get order", "order_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get order"})
		return
	}
	if o == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// UpdateStatus overwrites an order's status. Any known status value is
// accepted; the sequence is not checked here, matching the permissive
// data-layer contract.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if !order.Status(req.Status).Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status"})
		return
	}

	o, err := h.orderStore.UpdateStatus(id, req.Status)
	if err != nil {
		h.logger.Error("update order status", "order_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update status"})
		return
	}
	if o == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("order", "status_changed", o.ID, map[string]any{"status": o.Status}))
	writeJSON(w, http.StatusOK, o)
}

// Advance moves an order one step forward in the workflow, the dashboard's
// single-button action. Completed orders stay completed.
func (h *OrderHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.orderStore.GetByID(id)
	if err != nil {
		h.logger.Error("get order", "order_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get order"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	next := order.Status(existing.Status).Next()
	o, err := h.orderStore.UpdateStatus(id, string(next))
	if err != nil {
		h.logger.Error("advance order status", "order_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update status"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("order", "status_changed", o.ID, map[string]any{"status": o.Status}))
	writeJSON(w, http.StatusOK, o)
}
