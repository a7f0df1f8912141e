package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// SectionUseCase mantiene el catálogo de secciones en almacenamiento alineado con la configuración.
type SectionUseCase struct {
	repo    repository.SectionRepository
	catalog entity.SectionCatalog
}

// NewSectionUseCase construye el caso de uso con el catálogo configurado.
func NewSectionUseCase(repo repository.SectionRepository, catalog entity.SectionCatalog) *SectionUseCase {
	return &SectionUseCase{repo: repo, catalog: catalog}
}

// SeedCatalog inserta o actualiza cada sección del catálogo. Idempotente; no borra secciones.
func (uc *SectionUseCase) SeedCatalog(ctx context.Context) error {
	for _, s := range uc.catalog {
		if err := uc.repo.Upsert(ctx, s); err != nil {
			return fmt.Errorf("sembrar sección %s: %w", s.Name, err)
		}
	}
	return nil
}

// List devuelve el catálogo configurado en su orden de presentación.
func (uc *SectionUseCase) List() []dto.SectionResponse {
	out := make([]dto.SectionResponse, 0, len(uc.catalog))
	for _, s := range uc.catalog {
		out = append(out, dto.SectionResponse{Name: s.Name, RequiredHours: s.RequiredHours})
	}
	return out
}
