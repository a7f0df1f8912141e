package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones HTTP de tiendas.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         tiendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tiendas [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener tienda por código
// @Tags         tiendas
// @Produce      json
// @Param        codigo  path  string  true  "Código de la tienda (p. ej. T001)"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tiendas/{codigo} [get]
func (h *StoreHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tiendas
// @Description  Sin parámetros devuelve todas; con nombre filtra por subcadena sin distinguir mayúsculas.
// @Tags         tiendas
// @Produce      json
// @Param        nombre  query  string  false  "Texto a buscar en el nombre"
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/tiendas [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.StoreResponse
		err error
	)
	if name := c.Query("nombre"); name != "" {
		out, err = h.uc.SearchByName(c.UserContext(), name)
	} else {
		out, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Número de tiendas
// @Tags         tiendas
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/tiendas/total [get]
func (h *StoreHandler) Count(c *fiber.Ctx) error {
	n, err := h.uc.Count(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

// Exists godoc
// @Summary      Comprobar si existe una tienda
// @Tags         tiendas
// @Produce      json
// @Param        codigo  path  string  true  "Código de la tienda"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/tiendas/{codigo}/existe [get]
func (h *StoreHandler) Exists(c *fiber.Ctx) error {
	ok, err := h.uc.Exists(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: ok})
}

// Update godoc
// @Summary      Renombrar tienda
// @Tags         tiendas
// @Accept       json
// @Produce      json
// @Param        codigo  path  string                  true  "Código de la tienda"
// @Param        body    body  dto.UpdateStoreRequest  true  "Nuevo nombre"
// @Success      200  {object}  dto.StoreResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tiendas/{codigo} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("codigo"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tienda
// @Description  Elimina también sus trabajadores y las asignaciones de estos.
// @Tags         tiendas
// @Produce      json
// @Param        codigo  path  string  true  "Código de la tienda"
// @Success      200  {object}  dto.DeletionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tiendas/{codigo} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("codigo")
	res, err := h.uc.Delete(c.UserContext(), code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeletionResponse{
		Message:            "Tienda eliminada correctamente",
		Entity:             "Tienda",
		Identifier:         code,
		WorkersRemoved:     res.Workers,
		AssignmentsRemoved: res.Assignments,
		Timestamp:          time.Now(),
	})
}
