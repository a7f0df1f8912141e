package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
)

// WorkerHandler maneja las peticiones HTTP de trabajadores.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de trabajador
// @Description  Las horas disponibles admiten 0..8 en el alta. La tienda debe existir.
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkerRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.WorkerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trabajadores [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByDocument godoc
// @Summary      Obtener trabajador por DNI/NIE
// @Tags         trabajadores
// @Produce      json
// @Param        dni  path  string  true  "DNI o NIE"
// @Success      200  {object}  dto.WorkerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{dni} [get]
func (h *WorkerHandler) GetByDocument(c *fiber.Ctx) error {
	out, err := h.uc.GetByDocument(c.UserContext(), c.Params("dni"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar trabajadores
// @Description  Filtros excluyentes, en este orden: tienda, nombre, horasMinimas. Sin filtros devuelve todos.
// @Tags         trabajadores
// @Produce      json
// @Param        tienda        query  string  false  "Código de tienda"
// @Param        nombre        query  string  false  "Texto a buscar en el nombre"
// @Param        horasMinimas  query  int     false  "Horas disponibles mínimas"
// @Success      200  {array}   dto.WorkerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		out []dto.WorkerResponse
		err error
	)
	switch {
	case c.Query("tienda") != "":
		out, err = h.uc.ListByStore(ctx, c.Query("tienda"))
	case c.Query("nombre") != "":
		out, err = h.uc.SearchByName(ctx, c.Query("nombre"))
	case c.Query("horasMinimas") != "":
		minHours, convErr := strconv.Atoi(c.Query("horasMinimas"))
		if convErr != nil {
			return badRequest(c, "INVALID_QUERY", "horasMinimas debe ser un entero")
		}
		out, err = h.uc.ListWithMinHours(ctx, minHours)
	default:
		out, err = h.uc.SearchByName(ctx, "")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CountByStore godoc
// @Summary      Número de trabajadores de una tienda
// @Tags         trabajadores
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/tienda/{codigo}/total [get]
func (h *WorkerHandler) CountByStore(c *fiber.Ctx) error {
	n, err := h.uc.CountByStore(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

// AvailableHoursByStore godoc
// @Summary      Horas disponibles totales de una tienda
// @Tags         trabajadores
// @Produce      json
// @Param        codigo  path  string  true  "Código de tienda"
// @Success      200  {object}  dto.StoreHoursResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/tienda/{codigo}/horas [get]
func (h *WorkerHandler) AvailableHoursByStore(c *fiber.Ctx) error {
	code := c.Params("codigo")
	n, err := h.uc.SumAvailableHoursByStore(c.UserContext(), code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StoreHoursResponse{StoreCode: code, TotalHours: n})
}

// Update godoc
// @Summary      Modificar trabajador
// @Description  Cambia nombre y horas disponibles (1..8). DNI y tienda no cambian.
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Param        dni   path  string                   true  "DNI o NIE"
// @Param        body  body  dto.UpdateWorkerRequest  true  "Nuevos datos"
// @Success      200  {object}  dto.WorkerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{dni} [put]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("dni"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja de trabajador
// @Description  Elimina también sus asignaciones.
// @Tags         trabajadores
// @Produce      json
// @Param        dni  path  string  true  "DNI o NIE"
// @Success      200  {object}  dto.DeletionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{dni} [delete]
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	document := c.Params("dni")
	res, err := h.uc.Delete(c.UserContext(), document)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeletionResponse{
		Message:            "Trabajador eliminado correctamente",
		Entity:             "Trabajador",
		Identifier:         document,
		WorkersRemoved:     res.Workers,
		AssignmentsRemoved: res.Assignments,
		Timestamp:          time.Now(),
	})
}
