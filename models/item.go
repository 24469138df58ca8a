package models

import (
	"time"
)

// Item is a single entry on a shopping list. Category, Quantity and Unit are
// pointers because NULL ("unspecified") is distinct from the zero value:
// quantity nil means "no amount given", quantity 0 means "zero of it".
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListID    uint      `gorm:"not null;index" json:"list_id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	Category  *string   `gorm:"size:64" json:"category"`
	Quantity  *float64  `json:"quantity"`
	Unit      *string   `gorm:"size:24" json:"unit"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemRequest is the POST /items body. ListID travels in the body to
// match the creation endpoint, which is not nested under /lists. Length
// limits are enforced by the service on the trimmed values, not by binding
// tags, so a whitespace-padded but otherwise valid name is not rejected at
// the boundary.
type CreateItemRequest struct {
	ListID   uint     `json:"list_id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Category *string  `json:"category"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
	// Accepted for wire compatibility but ignored: items always start open.
	Done *bool `json:"done"`
}

// UpdateItemRequest is the PATCH body. Every field is a pointer: nil means
// "leave it alone", a non-nil value overwrites. For Category and Unit a
// non-nil empty string clears the stored value.
type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
	Done     *bool    `json:"done"`
}
