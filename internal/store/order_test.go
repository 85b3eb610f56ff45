package store

import (
	"testing"
	"time"

	"github.com/arjunmehra/dhaba/internal/database"
	"github.com/arjunmehra/dhaba/internal/model"
)

func setupOrderTestDB(t *testing.T) *OrderStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewOrderStore(db)
}

func testOrder(id string, ts time.Time) model.Order {
	return model.Order{
		ID:          id,
		TableNumber: "5",
		Items: []model.CartItem{
			{MenuItem: model.MenuItem{ID: "1", Name: "Paneer Tikka", Price: 200, Category: "Starters", Available: true}, Quantity: 1},
			{MenuItem: model.MenuItem{ID: "10", Name: "French Fries", Price: 60, Category: "Fast Food", Available: true}, Quantity: 2},
		},
		Total:         320,
		Status:        "received",
		Timestamp:     ts,
		PaymentStatus: "completed",
		CustomerPhone: "9876543210",
	}
}

func TestOrderCreateAndGet(t *testing.T) {
	os := setupOrderTestDB(t)

	ts := time.Date(2025, 11, 3, 12, 30, 0, 0, time.UTC)
	created, err := os.Create(testOrder("ORD1", ts))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Status != "received" {
		t.Errorf("status = %q, want %q", created.Status, "received")
	}
	if created.PaymentStatus != "completed" {
		t.Errorf("payment status = %q, want %q", created.PaymentStatus, "completed")
	}
	if created.Total != 320 {
		t.Errorf("total = %v, want 320", created.Total)
	}
	if len(created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(created.Items))
	}
	if !created.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", created.Timestamp, ts)
	}
}

func TestOrderGetByIDNotFound(t *testing.T) {
	os := setupOrderTestDB(t)

	got, err := os.GetByID("ORD404")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent order")
	}
}

func TestOrderListNewestFirst(t *testing.T) {
	os := setupOrderTestDB(t)

	base := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	os.Create(testOrder("ORD1", base))
	os.Create(testOrder("ORD2", base.Add(time.Minute)))
	os.Create(testOrder("ORD3", base.Add(2*time.Minute)))

	orders, err := os.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	want := []string{"ORD3", "ORD2", "ORD1"}
	for i, id := range want {
		if orders[i].ID != id {
			t.Errorf("orders[%d].ID = %q, want %q", i, orders[i].ID, id)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	os := setupOrderTestDB(t)

	os.Create(testOrder("ORD1", time.Now().UTC()))

	updated, err := os.UpdateStatus("ORD1", "preparing")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "preparing" {
		t.Errorf("status = %q, want %q", updated.Status, "preparing")
	}
}

func TestUpdateStatusIsPermissive(t *testing.T) {
	os := setupOrderTestDB(t)

	os.Create(testOrder("ORD1", time.Now().UTC()))

	// The store does not validate the current status, so a jump straight to
	// completed or a backward move both succeed.
	updated, err := os.UpdateStatus("ORD1", "completed")
	if err != nil {
		t.Fatalf("jump to completed: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("status = %q, want %q", updated.Status, "completed")
	}

	updated, err = os.UpdateStatus("ORD1", "received")
	if err != nil {
		t.Fatalf("backward to received: %v", err)
	}
	if updated.Status != "received" {
		t.Errorf("status = %q, want %q", updated.Status, "received")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	os := setupOrderTestDB(t)

	got, err := os.UpdateStatus("ORD404", "preparing")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent order")
	}
}

func TestUpdateStatusLeavesRestImmutable(t *testing.T) {
	os := setupOrderTestDB(t)

	ts := time.Date(2025, 11, 3, 12, 30, 0, 0, time.UTC)
	os.Create(testOrder("ORD1", ts))

	updated, _ := os.UpdateStatus("ORD1", "ready")
	if updated.Total != 320 {
		t.Errorf("total changed: %v", updated.Total)
	}
	if len(updated.Items) != 2 {
		t.Errorf("items changed: %d", len(updated.Items))
	}
	if !updated.Timestamp.Equal(ts) {
		t.Errorf("timestamp changed: %v", updated.Timestamp)
	}
	if updated.CustomerPhone != "9876543210" {
		t.Errorf("phone changed: %q", updated.CustomerPhone)
	}
}

func TestOrderOptionalFieldsEmpty(t *testing.T) {
	os := setupOrderTestDB(t)

	o := testOrder("ORD1", time.Now().UTC())
	o.TableNumber = ""
	o.CustomerPhone = ""

	created, err := os.Create(o)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.TableNumber != "" {
		t.Errorf("table number = %q, want empty", created.TableNumber)
	}
	if created.CustomerPhone != "" {
		t.Errorf("phone = %q, want empty", created.CustomerPhone)
	}
}
