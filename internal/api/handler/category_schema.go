package handler

import "time"

type createCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// updateCategoryRequest is a partial update: absent fields stay untouched.
type updateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// mensajeResponse is the Spanish-language confirmation/error envelope used by
// the catalog endpoints, preserved from the original API contract.
type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
