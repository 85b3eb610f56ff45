package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arjunmehra/dhaba/internal/model"
)

func sampleOrder() model.Order {
	return model.Order{
		ID:            "ORD1700000000123",
		TableNumber:   "5",
		Total:         320,
		Status:        "received",
		Timestamp:     time.Date(2025, 11, 3, 12, 30, 0, 0, time.UTC),
		PaymentStatus: "completed",
		CustomerPhone: "9876543210",
	}
}

func TestWhatsAppOrderCreated(t *testing.T) {
	var gotPath, gotText string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotText = r.URL.Query().Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewWhatsAppClient("916398059036", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	if err := client.OrderCreated(sampleOrder()); err != nil {
		t.Fatalf("order created: %v", err)
	}

	if gotPath != "/916398059036" {
		t.Errorf("path = %q, want %q", gotPath, "/916398059036")
	}
	for _, want := range []string{"ORD1700000000123", "₹320", "Table: 5", "Phone: 9876543210"} {
		if !strings.Contains(gotText, want) {
			t.Errorf("message missing %q:\n%s", want, gotText)
		}
	}
}

func TestWhatsAppMissingTableNumber(t *testing.T) {
	var gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
	}))
	defer server.Close()

	client := NewWhatsAppClient("916398059036", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	o := sampleOrder()
	o.TableNumber = ""
	if err := client.OrderCreated(o); err != nil {
		t.Fatalf("order created: %v", err)
	}
	if !strings.Contains(gotText, "Table: Not specified") {
		t.Errorf("message should mark missing table:\n%s", gotText)
	}
}

func TestWhatsAppServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWhatsAppClient("916398059036", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	if err := client.OrderCreated(sampleOrder()); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestWhatsAppNotConfigured(t *testing.T) {
	client := NewWhatsAppClient("")

	if client.Configured() {
		t.Error("empty phone should not be configured")
	}
	if err := client.OrderCreated(sampleOrder()); err == nil {
		t.Fatal("expected error for unconfigured client")
	}
}
