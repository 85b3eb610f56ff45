package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		conn: nil,
		send: make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcast(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	msg := NewMessage("order", "status_changed", "ORD1700000000123", map[string]any{"status": "preparing"})
	hub.Broadcast(msg)

	// Check both clients received the message
	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "order_status_changed" {
				t.Errorf("expected type order_status_changed, got %s", got.Type)
			}
			if got.ID != "ORD1700000000123" {
				t.Errorf("expected id ORD1700000000123, got %s", got.ID)
			}
			if got.Extra["status"] != "preparing" {
				t.Errorf("expected extra status preparing, got %v", got.Extra["status"])
			}
		default:
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)

	// Fill the buffer past capacity; broadcasts must not block.
	for i := 0; i < sendBufferSize+5; i++ {
		hub.Broadcast(NewMessage("cart", "updated", "cart_1", nil))
	}

	if got := len(c.send); got != sendBufferSize {
		t.Fatalf("expected %d buffered messages, got %d", sendBufferSize, got)
	}
}
