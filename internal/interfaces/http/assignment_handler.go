package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
)

// AssignmentHandler maneja las peticiones HTTP de asignaciones.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar horas a una sección
// @Description  Las horas (1..8) no pueden superar las disponibles del trabajador. Un par trabajador/sección solo se asigna una vez.
// @Tags         asignaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "Trabajador, sección y horas"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/asignaciones [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListWithMinHours godoc
// @Summary      Listar asignaciones con un mínimo de horas
// @Tags         asignaciones
// @Produce      json
// @Param        horasMinimas  query  int  false  "Horas mínimas (por defecto 1)"
// @Success      200  {array}   dto.AssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/asignaciones [get]
func (h *AssignmentHandler) ListWithMinHours(c *fiber.Ctx) error {
	minHours := 1
	if raw := c.Query("horasMinimas"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "horasMinimas debe ser un entero")
		}
		minHours = n
	}
	out, err := h.uc.ListWithMinHours(c.UserContext(), minHours)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByWorker godoc
// @Summary      Asignaciones de un trabajador
// @Tags         asignaciones
// @Produce      json
// @Param        dni  path  string  true  "DNI o NIE"
// @Success      200  {array}   dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni} [get]
func (h *AssignmentHandler) ListByWorker(c *fiber.Ctx) error {
	out, err := h.uc.ListByWorker(c.UserContext(), c.Params("dni"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CountByWorker godoc
// @Summary      Número de asignaciones de un trabajador
// @Tags         asignaciones
// @Produce      json
// @Param        dni  path  string  true  "DNI o NIE"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni}/total [get]
func (h *AssignmentHandler) CountByWorker(c *fiber.Ctx) error {
	n, err := h.uc.CountByWorker(c.UserContext(), c.Params("dni"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

// ListBySection godoc
// @Summary      Asignaciones de una sección
// @Tags         asignaciones
// @Produce      json
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      200  {array}   dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/seccion/{nombre} [get]
func (h *AssignmentHandler) ListBySection(c *fiber.Ctx) error {
	out, err := h.uc.ListBySection(c.UserContext(), c.Params("nombre"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CountBySection godoc
// @Summary      Número de asignaciones de una sección
// @Tags         asignaciones
// @Produce      json
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/seccion/{nombre}/total [get]
func (h *AssignmentHandler) CountBySection(c *fiber.Ctx) error {
	n, err := h.uc.CountBySection(c.UserContext(), c.Params("nombre"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

// HoursBySection godoc
// @Summary      Horas asignadas a una sección en todas las tiendas
// @Tags         asignaciones
// @Produce      json
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      200  {object}  dto.SectionHoursResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/seccion/{nombre}/horas [get]
func (h *AssignmentHandler) HoursBySection(c *fiber.Ctx) error {
	name := c.Params("nombre")
	n, err := h.uc.SumHoursBySection(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SectionHoursResponse{SectionName: name, TotalHours: n})
}

// ListByStore godoc
// @Summary      Asignaciones de los trabajadores de una tienda
// @Tags         asignaciones
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {array}  dto.AssignmentResponse
// @Router       /api/asignaciones/tienda/{codigo} [get]
func (h *AssignmentHandler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListByStore(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// HoursByStore godoc
// @Summary      Horas asignadas en una tienda
// @Tags         asignaciones
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {object}  dto.StoreHoursResponse
// @Router       /api/asignaciones/tienda/{codigo}/horas [get]
func (h *AssignmentHandler) HoursByStore(c *fiber.Ctx) error {
	code := c.Params("codigo")
	n, err := h.uc.SumHoursByStore(c.UserContext(), code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StoreHoursResponse{StoreCode: code, TotalHours: n})
}

// Get godoc
// @Summary      Obtener una asignación
// @Tags         asignaciones
// @Produce      json
// @Param        dni     path  string  true  "DNI o NIE"
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      200  {object}  dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni}/seccion/{nombre} [get]
func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("dni"), c.Params("nombre"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Comprobar si un trabajador está asignado a una sección
// @Tags         asignaciones
// @Produce      json
// @Param        dni     path  string  true  "DNI o NIE"
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      200  {object}  dto.ExistsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni}/seccion/{nombre}/existe [get]
func (h *AssignmentHandler) Exists(c *fiber.Ctx) error {
	ok, err := h.uc.Exists(c.UserContext(), c.Params("dni"), c.Params("nombre"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: ok})
}

// UpdateHours godoc
// @Summary      Cambiar las horas de una asignación
// @Tags         asignaciones
// @Accept       json
// @Produce      json
// @Param        dni     path  string                            true  "DNI o NIE"
// @Param        nombre  path  string                            true  "Nombre de la sección"
// @Param        body    body  dto.UpdateAssignmentHoursRequest  true  "Horas (1..8)"
// @Success      200  {object}  dto.AssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni}/seccion/{nombre} [put]
func (h *AssignmentHandler) UpdateHours(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentHoursRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.UpdateHours(c.UserContext(), c.Params("dni"), c.Params("nombre"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una asignación
// @Tags         asignaciones
// @Param        dni     path  string  true  "DNI o NIE"
// @Param        nombre  path  string  true  "Nombre de la sección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/trabajador/{dni}/seccion/{nombre} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("dni"), c.Params("nombre")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
