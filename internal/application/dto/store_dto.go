package dto

import "time"

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Code string `json:"code" validate:"required,len=4"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateStoreRequest entrada para renombrar una tienda (el código no cambia).
type UpdateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectionResponse sección del catálogo.
type SectionResponse struct {
	Name          string `json:"name"`
	RequiredHours int    `json:"required_hours"`
}

// CountResponse conteo simple.
type CountResponse struct {
	Count int `json:"count"`
}
