package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
)

// SectionHandler expone el catálogo de secciones (solo lectura).
type SectionHandler struct {
	uc *usecase.SectionUseCase
}

// NewSectionHandler construye el handler.
func NewSectionHandler(uc *usecase.SectionUseCase) *SectionHandler {
	return &SectionHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo de secciones
// @Tags         secciones
// @Produce      json
// @Success      200  {array}  dto.SectionResponse
// @Router       /api/secciones [get]
func (h *SectionHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
