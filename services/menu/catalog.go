package menu

// The menu as served by Bella Vista. In production this data is maintained
// through the back-office; the seed below keeps a fresh deployment usable.
var dishes = []Item{
	{
		UID:         "dish_chicken_kabsa",
		Name:        "Chicken Kabsa",
		Description: "Fragrant rice with spiced chicken, raisins and almonds",
		Category:    "mains",
		Price:       4500,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_lamb_mandi",
		Name:        "Lamb Mandi",
		Description: "Slow-cooked lamb shoulder over smoked rice",
		Category:    "mains",
		Price:       6800,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_mixed_grill",
		Name:        "Mixed Grill Platter",
		Description: "Shish tawook, kofta and lamb chops with grilled vegetables",
		Category:    "mains",
		Price:       8900,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_margherita",
		Name:        "Pizza Margherita",
		Description: "San Marzano tomatoes, mozzarella, basil",
		Category:    "mains",
		Price:       3900,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_hummus",
		Name:        "Hummus with Pine Nuts",
		Category:    "starters",
		Price:       1800,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_fattoush",
		Name:        "Fattoush Salad",
		Category:    "starters",
		Price:       2200,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_kunafa",
		Name:        "Kunafa",
		Description: "Warm cheese pastry in sugar syrup with pistachio",
		Category:    "desserts",
		Price:       2600,
		Currency:    "SAR",
		Available:   true,
	},
	{
		UID:         "dish_seasonal_catch",
		Name:        "Seasonal Catch",
		Description: "Ask your waiter for today's fish",
		Category:    "mains",
		Price:       9500,
		Currency:    "SAR",
		Available:   false,
	},
	{
		UID:       "drink_mint_lemonade",
		Name:      "Mint Lemonade",
		Category:  "drinks",
		Price:     1200,
		Currency:  "SAR",
		Available: true,
	},
	{
		UID:       "drink_saudi_coffee",
		Name:      "Saudi Coffee (dallah)",
		Category:  "drinks",
		Price:     1500,
		Currency:  "SAR",
		Available: true,
	},
}
