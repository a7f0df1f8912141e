package dto

// StoreStatusResponse estado de una tienda: quién cubre cada sección con asignaciones.
type StoreStatusResponse struct {
	StoreCode string               `json:"store_code"`
	StoreName string               `json:"store_name"`
	Address   string               `json:"address,omitempty"`
	Sections  []SectionStatusEntry `json:"sections"`
}

// SectionStatusEntry sección con al menos una asignación.
type SectionStatusEntry struct {
	Name    string           `json:"name"`
	Workers []AssignedWorker `json:"workers"`
}

// AssignedWorker trabajador asignado y sus horas en la sección.
type AssignedWorker struct {
	Document string `json:"document"`
	Name     string `json:"name"`
	Hours    int    `json:"hours"`
}

// StoreCoverageResponse secciones con horas por cubrir en una tienda.
type StoreCoverageResponse struct {
	StoreCode          string                 `json:"store_code"`
	StoreName          string                 `json:"store_name"`
	Address            string                 `json:"address,omitempty"`
	IncompleteSections []SectionCoverageEntry `json:"incomplete_sections"`
	TotalIncomplete    int                    `json:"total_incomplete"`
	TotalMissingHours  int                    `json:"total_missing_hours"`
}

// SectionCoverageEntry horas requeridas, asignadas y faltantes (> 0) de una sección.
type SectionCoverageEntry struct {
	Name     string `json:"name"`
	Required int    `json:"required"`
	Assigned int    `json:"assigned"`
	Missing  int    `json:"missing"`
}
