package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
)

// StockHandler lecturas de niveles de stock y kardex (protegido).
type StockHandler struct {
	uc *stock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.QueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Niveles de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id         query  string  false  "Bodega"
// @Param        product_id           query  string  false  "Producto"
// @Param        low_stock_threshold  query  int     false  "Solo cantidades <= umbral"
// @Param        limit                query  int     false  "Límite"  default(20)
// @Param        offset               query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	q, err := stockListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListStock(c.UserContext(), GetStoreID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Stock de un producto en una bodega
// @Description  Sin registro devuelve cantidad 0 y costo promedio nulo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId    path  string  true  "Producto"
// @Param        warehouseId  path  string  true  "Bodega"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId}/{warehouseId} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetStock(c.UserContext(), GetStoreID(c), c.Params("productId"), c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Kardex (movimientos de stock)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        product_id    query  string  false  "Producto"
// @Param        type          query  string  false  "Tipo de movimiento"
// @Param        from          query  string  false  "Desde (AAAA-MM-DD o RFC 3339)"
// @Param        to            query  string  false  "Hasta (AAAA-MM-DD o RFC 3339)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockMovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	dr, err := dateRangeQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListMovements(c.UserContext(), GetStoreID(c), dto.MovementListQuery{
		WarehouseID:    c.Query("warehouse_id"),
		ProductID:      c.Query("product_id"),
		Type:           c.Query("type"),
		DateRangeQuery: dr,
		PageRequest:    pageQuery(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
