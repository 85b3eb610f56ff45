package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
)

func TestEmailOrderCreated(t *testing.T) {
	var received postmarkEmail
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"MessageID": "test-id"}`))
	}))
	defer server.Close()

	client := NewEmailClient("test-token", "orders@dhaba.test", "staff@dhaba.test", WithEmailAPIURL(server.URL))

	o := model.Order{
		ID:            "ORD1700000000123",
		TableNumber:   "5",
		Total:         320,
		Status:        "received",
		Timestamp:     time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		CustomerPhone: "9876543210",
	}
	if err := client.OrderCreated(o); err != nil {
		t.Fatalf("order created: %v", err)
	}

	if gotToken != "test-token" {
		t.Errorf("server token = %q, want %q", gotToken, "test-token")
	}
	if received.To != "staff@dhaba.test" {
		t.Errorf("To = %q, want %q", received.To, "staff@dhaba.test")
	}
	if received.Subject != "New order ORD1700000000123" {
		t.Errorf("Subject = %q", received.Subject)
	}
	if !strings.Contains(received.TextBody, "ORD1700000000123") {
		t.Errorf("TextBody missing order id: %q", received.TextBody)
	}
	if !strings.Contains(received.TextBody, "320") {
		t.Errorf("TextBody missing total: %q", received.TextBody)
	}
}

func TestEmailOrderCreatedAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewEmailClient("test-token", "orders@dhaba.test", "staff@dhaba.test", WithEmailAPIURL(server.URL))
	if err := client.OrderCreated(model.Order{ID: "ORD1"}); err == nil {
		t.Fatal("expected error for API failure")
	}
}

func TestEmailNotConfigured(t *testing.T) {
	client := NewEmailClient("", "orders@dhaba.test", "staff@dhaba.test")
	if client.Configured() {
		t.Error("expected Configured() = false")
	}
	if err := client.OrderCreated(model.Order{ID: "ORD1"}); err == nil {
		t.Fatal("expected error for unconfigured client")
	}
}
