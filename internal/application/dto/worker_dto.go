package dto

import "time"

// CreateWorkerRequest entrada para dar de alta un trabajador.
type CreateWorkerRequest struct {
	Document       string `json:"document" validate:"required,len=9"`
	Name           string `json:"name" validate:"required,max=100"`
	AvailableHours int    `json:"available_hours" validate:"min=0,max=8"`
	StoreCode      string `json:"store_code" validate:"required"`
}

// UpdateWorkerRequest entrada para modificar nombre y horas (horas 1..8).
type UpdateWorkerRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	AvailableHours int    `json:"available_hours" validate:"min=1,max=8"`
}

// WorkerResponse salida de un trabajador.
type WorkerResponse struct {
	ID             string    `json:"id"`
	Document       string    `json:"document"`
	Name           string    `json:"name"`
	AvailableHours int       `json:"available_hours"`
	StoreCode      string    `json:"store_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DeletionResponse confirmación de una baja en cascada.
type DeletionResponse struct {
	Message            string    `json:"message"`
	Entity             string    `json:"entity"`
	Identifier         string    `json:"identifier"`
	WorkersRemoved     int       `json:"workers_removed"`
	AssignmentsRemoved int       `json:"assignments_removed"`
	Timestamp          time.Time `json:"timestamp"`
}
