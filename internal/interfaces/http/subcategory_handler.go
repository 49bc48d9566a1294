package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// SubcategoryHandler maneja las peticiones HTTP para Subcategory (protegido por rol).
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido", "VALIDATION"))
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Subcategoría creada exitosamente", out))
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido", "VALIDATION"))
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Subcategoría actualizada exitosamente", out))
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Subcategoría eliminada exitosamente", out))
}
