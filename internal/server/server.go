package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arjunmehra/dhaba/internal/admin"
	"github.com/arjunmehra/dhaba/internal/config"
	"github.com/arjunmehra/dhaba/internal/handler"
	"github.com/arjunmehra/dhaba/internal/middleware"
	"github.com/arjunmehra/dhaba/internal/notify"
	"github.com/arjunmehra/dhaba/internal/push"
	"github.com/arjunmehra/dhaba/internal/store"
	ws "github.com/arjunmehra/dhaba/internal/websocket"
)

type Server struct {
	db         *sql.DB
	hub        *ws.Hub
	menuH      *handler.MenuHandler
	cartH      *handler.CartHandler
	orderH     *handler.OrderHandler
	adminH     *handler.AdminHandler
	pushH      *handler.PushHandler
	adminStore *store.AdminStore
	menuStore  *store.MenuStore
	logger     *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	hub := ws.NewHub(logger.With("component", "websocket"))

	menuStore := store.NewMenuStore(db)
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)
	adminStore := store.NewAdminStore(db)
	pushStore := store.NewPushStore(db)

	adminSvc, err := admin.NewService(cfg.AdminUser, cfg.AdminPassword, adminStore, logger.With("component", "admin"))
	if err != nil {
		return nil, err
	}

	// Notification channels are all optional; an unconfigured channel is
	// simply not registered.
	notifyLogger := logger.With("component", "notify")
	notifySvc := notify.NewService(notifyLogger)
	if wa := notify.NewWhatsAppClient(cfg.WhatsAppPhone); wa.Configured() {
		notifySvc.AddChannel(wa)
	}
	if em := notify.NewEmailClient(cfg.PostmarkToken, cfg.AlertEmailFrom, cfg.AlertEmailTo); em.Configured() {
		notifySvc.AddChannel(em)
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramClient(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			notifyLogger.Error("telegram channel disabled", "error", err)
		} else {
			notifySvc.AddChannel(tg)
		}
	}

	var pushSvc *push.Service
	var pushH *handler.PushHandler
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		pushSvc = push.NewService(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey)
		notifySvc.EnablePush(pushSvc, pushStore)
		pushH = handler.NewPushHandler(pushStore, pushSvc, logger.With("component", "push_handler"))
	}

	return &Server{
		db:         db,
		hub:        hub,
		menuH:      handler.NewMenuHandler(menuStore, hub, logger.With("component", "menu")),
		cartH:      handler.NewCartHandler(cartStore, menuStore, hub, logger.With("component", "cart")),
		orderH:     handler.NewOrderHandler(orderStore, cartStore, notifySvc, hub, logger.With("component", "order")),
		adminH:     handler.NewAdminHandler(adminSvc, hub, logger.With("component", "admin_handler")),
		pushH:      pushH,
		adminStore: adminStore,
		menuStore:  menuStore,
		logger:     logger,
	}, nil
}

// MenuStore returns the menu store for startup seeding.
func (s *Server) MenuStore() *store.MenuStore {
	return s.menuStore
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Customer-facing routes, no login required.
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /api/menu", s.menuH.List)
	mux.HandleFunc("GET /api/menu/categories", s.menuH.Categories)

	mux.HandleFunc("POST /api/carts", s.cartH.Create)
	mux.HandleFunc("GET /api/carts/{cart_id}", s.cartH.Get)
	mux.HandleFunc("POST /api/carts/{cart_id}/items", s.cartH.AddItem)
	mux.HandleFunc("PUT /api/carts/{cart_id}/items/{item_id}", s.cartH.UpdateQuantity)
	mux.HandleFunc("DELETE /api/carts/{cart_id}/items/{item_id}", s.cartH.RemoveItem)
	mux.HandleFunc("POST /api/carts/{cart_id}/clear", s.cartH.Clear)
	mux.HandleFunc("PUT /api/carts/{cart_id}/table", s.cartH.SetTable)

	mux.HandleFunc("POST /api/orders", s.orderH.Create)
	mux.HandleFunc("GET /api/orders/{id}", s.orderH.Get)

	mux.HandleFunc("POST /api/admin/login", s.adminH.Login)
	mux.HandleFunc("POST /api/admin/logout", s.adminH.Logout)
	mux.HandleFunc("GET /api/admin/status", s.adminH.Status)

	// Management routes, gated on the mirrored staff login flag.
	gate := middleware.RequireAdmin(s.adminStore)
	managed := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, gate(h))
	}
	managed("POST /api/menu", s.menuH.Create)
	managed("PUT /api/menu/{id}", s.menuH.Update)
	managed("PUT /api/menu/{id}/availability", s.menuH.SetAvailability)
	managed("DELETE /api/menu/{id}", s.menuH.Delete)
	managed("GET /api/orders", s.orderH.List)
	managed("PUT /api/orders/{id}/status", s.orderH.UpdateStatus)
	managed("POST /api/orders/{id}/advance", s.orderH.Advance)
	if s.pushH != nil {
		managed("POST /api/push/subscribe", s.pushH.Subscribe)
		managed("GET /api/push/subscriptions", s.pushH.ListSubscriptions)
		managed("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)
		managed("GET /api/push/vapid-key", s.pushH.GetVAPIDKey)
	}

	// WebSocket feed of menu, cart, order, and admin changes.
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
