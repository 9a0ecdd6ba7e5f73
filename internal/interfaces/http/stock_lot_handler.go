package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
)

// maxImportItems tope de ítems por importación de lotes.
const maxImportItems = 1000

// StockLotHandler lotes de compra (protegido).
type StockLotHandler struct {
	uc *stock.StockLotUseCase
}

// NewStockLotHandler construye el handler.
func NewStockLotHandler(uc *stock.StockLotUseCase) *StockLotHandler {
	return &StockLotHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lote
// @Description  Si se crea en DELIVERED entra al stock y recalcula el costo promedio ponderado.
// @Tags         stock-lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockLotRequest  true  "Lote"
// @Success      201   {object}  dto.StockLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-lots [post]
func (h *StockLotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockLotRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetStoreID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Description  Entra al stock solo al pasar a DELIVERED. Un lote entregado no puede cambiar de estado.
// @Tags         stock-lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del lote"
// @Param        body  body  dto.UpdateStockLotRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-lots/{id} [put]
func (h *StockLotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockLotRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetStoreID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Description  Borra el documento; el stock ya recibido no se revierte.
// @Tags         stock-lots
// @Security     Bearer
// @Param        id   path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-lots/{id} [delete]
func (h *StockLotHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetStoreID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         stock-lots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.StockLotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-lots/{id} [get]
func (h *StockLotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes
// @Tags         stock-lots
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "PENDING | DELIVERED | CANCELLED"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        supplier_id   query  string  false  "Proveedor"
// @Param        product_id    query  string  false  "Producto"
// @Param        from          query  string  false  "Desde"
// @Param        to            query  string  false  "Hasta"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockLotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-lots [get]
func (h *StockLotHandler) List(c *fiber.Ctx) error {
	q, err := stockLotListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetStoreID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar lotes
// @Description  Procesa los ítems en orden, cada uno en su propia transacción. Un ítem fallido no afecta a los demás.
// @Tags         stock-lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportStockLotsRequest  true  "Lotes"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-lots/import [post]
func (h *StockLotHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportStockLotsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.Items) > maxImportItems {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "máximo 1000 ítems por importación"})
	}
	results := h.uc.Import(c.UserContext(), GetStoreID(c), GetUserID(c), in.Items)
	out := dto.ImportResponse{Results: results}
	for _, r := range results {
		if r.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	return c.JSON(out)
}
