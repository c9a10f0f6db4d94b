package domain

import "time"

// Item is a single grocery entry on a user's list.
type Item struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Comment is attached to an item. Author is a display string, defaulted to
// the commenting user's full name when the client omits it.
type Comment struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
