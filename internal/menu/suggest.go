package menu

import "strings"

// SuggestCategory guesses the category for a dish name when the staff leave
// it blank on the item form. It performs case-insensitive matching: exact
// match first, then substring match. Falls back to "Fast Food" when nothing
// matches.
func SuggestCategory(dishName string) string {
	name := strings.ToLower(strings.TrimSpace(dishName))
	if name == "" {
		return "Fast Food"
	}

	if cat, ok := exactCategory[name]; ok {
		return cat
	}

	// Ordered longer/more-specific keywords first.
	for _, entry := range categoryKeywords {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Fast Food"
}

var exactCategory = map[string]string{
	"paneer tikka":   "Starters",
	"malai chaap":    "Starters",
	"mushroom tikka": "Starters",
	"french fries":   "Fast Food",
	"spring roll":    "Fast Food",
	"chowmein":       "Fast Food",
	"poha":           "Breakfast",
	"aloo paratha":   "Breakfast",
	"samosa":         "Chaat",
	"aloo tikki":     "Chaat",
	"masala dosa":    "South Indian",
	"idli sambar":    "South Indian",
	"cold coffee":    "Hot & Cold",
	"masala chai":    "Hot & Cold",
	"lassi":          "Hot & Cold",
}

type categoryKeyword struct {
	keyword  string
	category string
}

var categoryKeywords = []categoryKeyword{
	// Starters
	{"tandoori platter", "Starters"},
	{"afghani", "Starters"},
	{"tandoori", "Starters"},
	{"tikka", "Starters"},
	{"chaap", "Starters"},
	{"kebab", "Starters"},

	// Burger/Pizza
	{"cheese burst", "Burger/Pizza"},
	{"burger", "Burger/Pizza"},
	{"pizza", "Burger/Pizza"},

	// Chaat
	{"papdi chaat", "Chaat"},
	{"dahi bhalla", "Chaat"},
	{"golgappa", "Chaat"},
	{"bhel", "Chaat"},
	{"tikki", "Chaat"},
	{"chaat", "Chaat"},
	{"samosa", "Chaat"},
	{"kachori", "Chaat"},

	// South Indian
	{"uttapam", "South Indian"},
	{"dosa", "South Indian"},
	{"idli", "South Indian"},
	{"vada", "South Indian"},
	{"sambar", "South Indian"},
	{"upma", "South Indian"},

	// Breakfast
	{"paratha", "Breakfast"},
	{"poori", "Breakfast"},
	{"chole bhature", "Breakfast"},
	{"bhature", "Breakfast"},
	{"sandwich", "Breakfast"},
	{"omelette", "Breakfast"},
	{"poha", "Breakfast"},
	{"maggi", "Breakfast"},

	// Fast Food
	{"spring roll", "Fast Food"},
	{"manchurian", "Fast Food"},
	{"chowmein", "Fast Food"},
	{"noodle", "Fast Food"},
	{"momos", "Fast Food"},
	{"momo", "Fast Food"},
	{"fries", "Fast Food"},
	{"pasta", "Fast Food"},
	{"roll", "Fast Food"},

	// Hot & Cold. "tea" stays last so "Steamed" dishes match their own
	// keywords first.
	{"cold coffee", "Hot & Cold"},
	{"ice cream", "Hot & Cold"},
	{"milkshake", "Hot & Cold"},
	{"shake", "Hot & Cold"},
	{"lassi", "Hot & Cold"},
	{"chai", "Hot & Cold"},
	{"coffee", "Hot & Cold"},
	{"juice", "Hot & Cold"},
	{"soda", "Hot & Cold"},
	{"mocktail", "Hot & Cold"},
	{"tea", "Hot & Cold"},
}
