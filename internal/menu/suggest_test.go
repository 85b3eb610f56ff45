package menu

import "testing"

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Paneer Tikka", "Starters"},
		{"Veg Seekh Kebab", "Starters"},
		{"Cheese Burger", "Burger/Pizza"},
		{"Margherita Pizza", "Burger/Pizza"},
		{"Aloo Tikki", "Chaat"},
		{"Papdi Chaat", "Chaat"},
		{"Masala Dosa", "South Indian"},
		{"Rava Idli", "South Indian"},
		{"Aloo Paratha", "Breakfast"},
		{"Veg Sandwich", "Breakfast"},
		{"Momos Steamed (Full)", "Fast Food"},
		{"Schezwan Chowmein", "Fast Food"},
		{"Cold Coffee", "Hot & Cold"},
		{"Mango Shake", "Hot & Cold"},
		{"Masala Chai", "Hot & Cold"},
	}
	for _, tt := range tests {
		if got := SuggestCategory(tt.name); got != tt.want {
			t.Errorf("SuggestCategory(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSuggestCategoryFallback(t *testing.T) {
	if got := SuggestCategory("Mystery Special"); got != "Fast Food" {
		t.Errorf("SuggestCategory fallback = %q, want %q", got, "Fast Food")
	}
	if got := SuggestCategory(""); got != "Fast Food" {
		t.Errorf("SuggestCategory(\"\") = %q, want %q", got, "Fast Food")
	}
}

func TestSuggestCategoryIsValid(t *testing.T) {
	// Every suggestion must be a real category.
	for _, name := range []string{"Paneer Tikka", "Pizza", "Lassi", "Anything Else"} {
		if cat := SuggestCategory(name); !ValidCategory(cat) {
			t.Errorf("SuggestCategory(%q) = %q, not a valid category", name, cat)
		}
	}
}
