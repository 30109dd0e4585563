package menu

// Item is a dish as offered on the menu. The cart captures a snapshot of the
// price at the time of adding; it never mutates an Item.
type Item struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       int    `json:"price"` // halalas
	Currency    string `json:"currency"`
	Available   bool   `json:"available"`
}
