package domain

import "time"

// Category groups products in the catalog. Name is unique across the
// collection; the store enforces it through a unique index.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
