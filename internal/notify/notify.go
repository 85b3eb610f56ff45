// Package notify dispatches best-effort outbound alerts when an order is
// created: a WhatsApp deep link, an optional Telegram staff chat message,
// and web push to registered admin devices. Every channel is
// fire-and-forget — failures are logged, never retried, and never surfaced
// to the customer.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/arjunmehra/dhaba/internal/model"
	"github.com/arjunmehra/dhaba/internal/push"
	"github.com/arjunmehra/dhaba/internal/store"
)

// Channel is a single outbound notification destination.
type Channel interface {
	OrderCreated(o model.Order) error
}

// Service fans an order-created event out to all configured channels.
type Service struct {
	channels  []Channel
	pushSvc   *push.Service
	pushStore *store.PushStore
	logger    *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// AddChannel registers an outbound channel. Nil channels are ignored so the
// caller can pass unconfigured clients straight through.
func (s *Service) AddChannel(c Channel) {
	if c != nil {
		s.channels = append(s.channels, c)
	}
}

// EnablePush turns on web push delivery to every registered subscription.
func (s *Service) EnablePush(svc *push.Service, st *store.PushStore) {
	s.pushSvc = svc
	s.pushStore = st
}

// OrderCreated dispatches the alert on every channel. Intended to be called
// from a goroutine after the order is durably created; errors are logged
// and swallowed.
func (s *Service) OrderCreated(o model.Order) {
	for _, c := range s.channels {
		if err := c.OrderCreated(o); err != nil {
			s.logger.Error("order notification failed", "order_id", o.ID, "error", err)
		}
	}
	s.sendPush(o)
}

func (s *Service) sendPush(o model.Order) {
	if s.pushSvc == nil || s.pushStore == nil {
		return
	}

	subs, err := s.pushStore.List()
	if err != nil {
		s.logger.Error("list push subscriptions", "error", err)
		return
	}

	payload := push.Payload{
		Title: "New order",
		Body:  fmt.Sprintf("Order %s: ₹%.0f, table %s", o.ID, o.Total, displayTable(o.TableNumber)),
		URL:   "/admin-dashboard",
		Tag:   o.ID,
	}
	for i := range subs {
		sub := subs[i]
		err := s.pushSvc.Send(&sub, payload)
		if err == push.ErrExpired {
			// Stale endpoint; drop it so we stop retrying forever.
			if delErr := s.pushStore.Delete(sub.ID); delErr != nil {
				s.logger.Error("delete expired subscription", "id", sub.ID, "error", delErr)
			}
			continue
		}
		if err != nil {
			s.logger.Error("push notification failed", "order_id", o.ID, "subscription_id", sub.ID, "error", err)
		}
	}
}

func displayTable(table string) string {
	if table == "" {
		return "n/a"
	}
	return table
}
