package dto

// CreateAssignmentRequest entrada para asignar horas de un trabajador a una sección.
type CreateAssignmentRequest struct {
	WorkerDocument string `json:"worker_document" validate:"required"`
	SectionName    string `json:"section_name" validate:"required"`
	Hours          int    `json:"hours" validate:"min=1,max=8"`
}

// UpdateAssignmentHoursRequest entrada para cambiar las horas de una asignación.
type UpdateAssignmentHoursRequest struct {
	Hours int `json:"hours" validate:"min=1,max=8"`
}

// AssignmentResponse salida de una asignación, enriquecida con datos del trabajador.
type AssignmentResponse struct {
	WorkerDocument string `json:"worker_document"`
	WorkerName     string `json:"worker_name"`
	SectionName    string `json:"section_name"`
	Hours          int    `json:"hours"`
	StoreCode      string `json:"store_code"`
}

// StoreHoursResponse total de horas asignadas en una tienda.
type StoreHoursResponse struct {
	StoreCode  string `json:"store_code"`
	TotalHours int    `json:"total_hours"`
}

// SectionHoursResponse total de horas asignadas en una sección (todas las tiendas).
type SectionHoursResponse struct {
	SectionName string `json:"section_name"`
	TotalHours  int    `json:"total_hours"`
}

// ExistsResponse resultado de una comprobación de existencia.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
