package menu

import "github.com/arjunmehra/dhaba/internal/model"

// Categories is the fixed set of menu categories, in display order.
var Categories = []string{
	"Starters",
	"Fast Food",
	"Breakfast",
	"Chaat",
	"Burger/Pizza",
	"South Indian",
	"Hot & Cold",
}

// Seed returns the static default catalog. It seeds the store on first run
// and serves as the fallback when the store cannot be read.
func Seed() []model.MenuItem {
	items := make([]model.MenuItem, len(seedData))
	copy(items, seedData)
	return items
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

var seedData = []model.MenuItem{
	// Starters
	{ID: "1", Name: "Paneer Tikka", Price: 200, Category: "Starters", Description: "Grilled cottage cheese with spices", Available: true},
	{ID: "2", Name: "Paneer Malai Tikka", Price: 220, Category: "Starters", Description: "Creamy cottage cheese tikka", Available: true},
	{ID: "3", Name: "Paneer Afghani Tikka", Price: 200, Category: "Starters", Description: "Afghani style cottage cheese", Available: true},
	{ID: "4", Name: "Tandoori Tea", Price: 160, Category: "Starters", Description: "Special tandoori flavored tea", Available: true},
	{ID: "5", Name: "Afghani Chaap Tikka", Price: 160, Category: "Starters", Description: "Afghani style soya chaap", Available: true},
	{ID: "6", Name: "Tandoori Momos (8pcs)", Price: 160, Category: "Starters", Description: "Tandoori style momos", Available: true},
	{ID: "7", Name: "Tandoori Platter", Price: 280, Category: "Starters", Description: "Mixed tandoori items", Available: true},
	{ID: "8", Name: "Malai Chaap", Price: 180, Category: "Starters", Description: "Creamy soya chaap", Available: true},
	{ID: "9", Name: "Mushroom Tikka", Price: 200, Category: "Starters", Description: "Grilled mushroom with spices", Available: true},

	// Fast Food
	{ID: "10", Name: "French Fries", Price: 60, Category: "Fast Food", Description: "Crispy golden fries", Available: true},
	{ID: "11", Name: "Pizza Potato", Price: 60, Category: "Fast Food", Description: "Pizza flavored potato", Available: true},
	{ID: "12", Name: "Sweet Chilli Potato", Price: 70, Category: "Fast Food", Description: "Sweet and spicy potato", Available: true},
	{ID: "13", Name: "Delhi Paneer Dry", Price: 100, Category: "Fast Food", Description: "Dry paneer Delhi style", Available: true},
	{ID: "14", Name: "Delhi Paneer Gravy", Price: 120, Category: "Fast Food", Description: "Paneer in rich gravy", Available: true},
	{ID: "15", Name: "Manchurian Dry (5pcs)", Price: 60, Category: "Fast Food", Description: "Dry manchurian balls", Available: true},
	{ID: "16", Name: "Spring Roll", Price: 80, Category: "Fast Food", Description: "Crispy vegetable spring rolls", Available: true},
	{ID: "17", Name: "Momos Steamed (Full)", Price: 70, Category: "Fast Food", Description: "Steamed momos full plate", Available: true},
	{ID: "18", Name: "Momos Steamed (Half)", Price: 40, Category: "Fast Food", Description: "Steamed momos half plate", Available: true},
	{ID: "19", Name: "Momos Fried (Full)", Price: 90, Category: "Fast Food", Description: "Fried momos full plate", Available: true},
	{ID: "20", Name: "Momos Fried (Half)", Price: 50, Category: "Fast Food", Description: "Fried momos half plate", Available: true},
	{ID: "21", Name: "Chowmein", Price: 50, Category: "Fast Food", Description: "Classic vegetable chowmein", Available: true},
	{ID: "22", Name: "Double Chowmein", Price: 70, Category: "Fast Food", Description: "Double portion chowmein", Available: true},
	{ID: "23", Name: "Schezwan Chowmein", Price: 80, Category: "Fast Food", Description: "Spicy schezwan chowmein", Available: true},
	{ID: "24", Name: "Pav Bhaji", Price: 60, Category: "Fast Food", Description: "Mumbai style pav bhaji", Available: true},
	{ID: "25", Name: "Extra Pav", Price: 20, Category: "Fast Food", Description: "Additional pav bread", Available: true},
	{ID: "26", Name: "Pasta (Red Sauce)", Price: 80, Category: "Fast Food", Description: "Pasta in tomato sauce", Available: true},
	{ID: "27", Name: "Pasta (White Sauce)", Price: 100, Category: "Fast Food", Description: "Pasta in white sauce", Available: true},

	// Breakfast
	{ID: "28", Name: "Chole Bhature (Full)", Price: 50, Category: "Breakfast", Description: "Full plate chole bhature", Available: true},
	{ID: "29", Name: "Chole Bhature (Half)", Price: 30, Category: "Breakfast", Description: "Half plate chole bhature", Available: true},

	// Chaat
	{ID: "30", Name: "Samosa", Price: 15, Category: "Chaat", Description: "Crispy samosa", Available: true},
	{ID: "31", Name: "Tikki", Price: 25, Category: "Chaat", Description: "Aloo tikki", Available: true},
	{ID: "32", Name: "Bhalla Papdi", Price: 50, Category: "Chaat", Description: "Delhi style bhalla papdi", Available: true},
	{ID: "33", Name: "Golgappa with Water (5pcs)", Price: 25, Category: "Chaat", Description: "Golgappa with spicy water", Available: true},
	{ID: "34", Name: "Golgappa with Curd (5pcs)", Price: 35, Category: "Chaat", Description: "Golgappa with sweet curd", Available: true},
	{ID: "35", Name: "Raj Kachori", Price: 60, Category: "Chaat", Description: "King size kachori", Available: true},

	// Burger/Pizza
	{ID: "36", Name: "Plain Burger", Price: 40, Category: "Burger/Pizza", Description: "Simple veg burger", Available: true},
	{ID: "37", Name: "Cheese Burger", Price: 60, Category: "Burger/Pizza", Description: "Burger with cheese", Available: true},
	{ID: "38", Name: "Pizza (Small)", Price: 80, Category: "Burger/Pizza", Description: "Small size pizza", Available: true},
	{ID: "39", Name: "Pizza (Medium)", Price: 150, Category: "Burger/Pizza", Description: "Medium size pizza", Available: true},

	// South Indian
	{ID: "40", Name: "Plain Dosa", Price: 60, Category: "South Indian", Description: "Classic plain dosa", Available: true},
	{ID: "41", Name: "Masala Dosa", Price: 70, Category: "South Indian", Description: "Dosa with potato filling", Available: true},
	{ID: "42", Name: "Paneer Dosa", Price: 100, Category: "South Indian", Description: "Dosa with paneer filling", Available: true},

	// Hot & Cold
	{ID: "43", Name: "Tea", Price: 20, Category: "Hot & Cold", Description: "Fresh brewed tea", Available: true},
	{ID: "44", Name: "Lassi (Seasonal)", Price: 40, Category: "Hot & Cold", Description: "Seasonal fresh lassi", Available: true},
	{ID: "45", Name: "Coffee (Seasonal)", Price: 25, Category: "Hot & Cold", Description: "Seasonal coffee", Available: true},
	{ID: "46", Name: "Cold Drinks", Price: 25, Category: "Hot & Cold", Description: "Assorted cold drinks", Available: true},
	{ID: "47", Name: "Mineral Water", Price: 20, Category: "Hot & Cold", Description: "Packaged drinking water", Available: true},
}
