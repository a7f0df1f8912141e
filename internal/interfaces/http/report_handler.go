package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/report"
)

// ReportHandler expone los informes de estado y cobertura de una tienda.
type ReportHandler struct {
	uc *report.CoverageUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.CoverageUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StoreStatus godoc
// @Summary      Estado de una tienda
// @Description  Secciones con al menos una asignación y los trabajadores que las cubren.
// @Tags         reportes
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {object}  dto.StoreStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/tienda/{codigo}/estado [get]
func (h *ReportHandler) StoreStatus(c *fiber.Ctx) error {
	out, err := h.uc.StoreStatus(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StoreCoverage godoc
// @Summary      Cobertura de una tienda
// @Description  Secciones del catálogo con horas por cubrir y los totales faltantes.
// @Tags         reportes
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {object}  dto.StoreCoverageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/tienda/{codigo}/cobertura [get]
func (h *ReportHandler) StoreCoverage(c *fiber.Ctx) error {
	out, err := h.uc.StoreCoverage(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StoreCoveragePDF godoc
// @Summary      Cobertura de una tienda en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/tienda/{codigo}/cobertura/pdf [get]
func (h *ReportHandler) StoreCoveragePDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.StoreCoveragePDF(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
