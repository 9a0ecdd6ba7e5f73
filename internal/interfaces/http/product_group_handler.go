package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// ProductGroupHandler maneja las peticiones HTTP para ProductGroup (protegido).
type ProductGroupHandler struct {
	uc *usecase.ProductGroupUseCase
}

// NewProductGroupHandler construye el handler.
func NewProductGroupHandler(uc *usecase.ProductGroupUseCase) *ProductGroupHandler {
	return &ProductGroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo de productos
// @Tags         product-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductGroupRequest  true  "Datos del grupo"
// @Success      201   {object}  dto.ProductGroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product-groups [post]
func (h *ProductGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar grupos de productos
// @Tags         product-groups
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductGroupListResponse
// @Router       /api/product-groups [get]
func (h *ProductGroupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetStoreID(c), catalogListQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo de productos por ID
// @Tags         product-groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.ProductGroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-groups/{id} [get]
func (h *ProductGroupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar grupo de productos
// @Tags         product-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del grupo"
// @Param        body  body  dto.UpdateProductGroupRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductGroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-groups/{id} [put]
func (h *ProductGroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetStoreID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar grupo de productos
// @Tags         product-groups
// @Security     Bearer
// @Param        id   path  string  true  "ID del grupo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product-groups/{id} [delete]
func (h *ProductGroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetStoreID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
