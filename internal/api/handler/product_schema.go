package handler

import "time"

// Price and Stock are pointers so that a legitimate zero passes "required".
type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=200"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
	CategoryID  string   `json:"category_id" validate:"required"`
}

// updateProductRequest is a partial update: absent fields stay untouched.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=200"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id" validate:"omitempty"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
