package menu

import "testing"

func TestSeedItemsValid(t *testing.T) {
	items := Seed()
	if len(items) != 47 {
		t.Fatalf("expected 47 seed items, got %d", len(items))
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if item.ID == "" {
			t.Errorf("item %q has empty id", item.Name)
		}
		if seen[item.ID] {
			t.Errorf("duplicate seed id %q", item.ID)
		}
		seen[item.ID] = true
		if item.Price < 0 {
			t.Errorf("item %q has negative price %v", item.Name, item.Price)
		}
		if !ValidCategory(item.Category) {
			t.Errorf("item %q has unknown category %q", item.Name, item.Category)
		}
		if !item.Available {
			t.Errorf("seed item %q should start available", item.Name)
		}
	}
}

func TestSeedReturnsCopy(t *testing.T) {
	a := Seed()
	a[0].Name = "mutated"

	b := Seed()
	if b[0].Name == "mutated" {
		t.Error("Seed must return an independent copy")
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("Starters") {
		t.Error("Starters should be valid")
	}
	if ValidCategory("Desserts") {
		t.Error("Desserts should not be valid")
	}
	if ValidCategory("") {
		t.Error("empty category should not be valid")
	}
}
