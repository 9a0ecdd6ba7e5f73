package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/export"
)

// ExportHandler exportaciones CSV (protegido). Aceptan los mismos filtros que los listados.
type ExportHandler struct {
	uc  *export.UseCase
	now func() time.Time
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc, now: time.Now}
}

// send escribe el adjunto solo si la exportación terminó sin error, para no mezclar
// un CSV parcial con una respuesta de error.
func (h *ExportHandler) send(c *fiber.Ctx, name string, write func(buf *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, h.uc.ContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.uc.Filename(name, h.now())+`"`)
	return c.Send(buf.Bytes())
}

// Stock godoc
// @Summary      Exportar niveles de stock
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        warehouse_id         query  string  false  "Bodega"
// @Param        product_id           query  string  false  "Producto"
// @Param        low_stock_threshold  query  int     false  "Solo cantidades <= umbral"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/stock [get]
func (h *ExportHandler) Stock(c *fiber.Ctx) error {
	q, err := stockListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	return h.send(c, "stock", func(buf *bytes.Buffer) error {
		return h.uc.Stock(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// Products godoc
// @Summary      Exportar productos
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        search            query  string  false  "Nombre, SKU o código de barras"
// @Param        product_group_id  query  string  false  "Grupo"
// @Success      200
// @Router       /api/export/products [get]
func (h *ExportHandler) Products(c *fiber.Ctx) error {
	q := productListQuery(c)
	return h.send(c, "productos", func(buf *bytes.Buffer) error {
		return h.uc.Products(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// Transfers godoc
// @Summary      Exportar traslados
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        status        query  string  false  "Estado"
// @Param        warehouse_id  query  string  false  "Bodega de origen o destino"
// @Param        product_id    query  string  false  "Producto"
// @Param        from          query  string  false  "Desde"
// @Param        to            query  string  false  "Hasta"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/transfers [get]
func (h *ExportHandler) Transfers(c *fiber.Ctx) error {
	q, err := transferListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	return h.send(c, "traslados", func(buf *bytes.Buffer) error {
		return h.uc.Transfers(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// Adjustments godoc
// @Summary      Exportar ajustes
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        type          query  string  false  "INCREASE | DECREASE"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        product_id    query  string  false  "Producto"
// @Param        from          query  string  false  "Desde"
// @Param        to            query  string  false  "Hasta"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/adjustments [get]
func (h *ExportHandler) Adjustments(c *fiber.Ctx) error {
	q, err := adjustmentListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	return h.send(c, "ajustes", func(buf *bytes.Buffer) error {
		return h.uc.Adjustments(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// StockLots godoc
// @Summary      Exportar lotes
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        status        query  string  false  "Estado"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        supplier_id   query  string  false  "Proveedor"
// @Param        product_id    query  string  false  "Producto"
// @Param        from          query  string  false  "Desde"
// @Param        to            query  string  false  "Hasta"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/stock-lots [get]
func (h *ExportHandler) StockLots(c *fiber.Ctx) error {
	q, err := stockLotListQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	return h.send(c, "lotes", func(buf *bytes.Buffer) error {
		return h.uc.StockLots(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// Customers godoc
// @Summary      Exportar clientes
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        search  query  string  false  "Filtro"
// @Success      200
// @Router       /api/export/customers [get]
func (h *ExportHandler) Customers(c *fiber.Ctx) error {
	q := catalogListQuery(c)
	return h.send(c, "clientes", func(buf *bytes.Buffer) error {
		return h.uc.Customers(c.UserContext(), GetStoreID(c), q, buf)
	})
}

// Suppliers godoc
// @Summary      Exportar proveedores
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        search  query  string  false  "Filtro"
// @Success      200
// @Router       /api/export/suppliers [get]
func (h *ExportHandler) Suppliers(c *fiber.Ctx) error {
	q := catalogListQuery(c)
	return h.send(c, "proveedores", func(buf *bytes.Buffer) error {
		return h.uc.Suppliers(c.UserContext(), GetStoreID(c), q, buf)
	})
}
