package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

const dateOnly = "2006-01-02"

// pageQuery lee limit/offset; los límites los aplica cada caso de uso (dto.PageRequest.DefaultPage).
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultLimit), Offset: c.QueryInt("offset", 0)}
}

// dateRangeQuery lee from/to en RFC 3339 o AAAA-MM-DD. Un "to" de solo fecha incluye el día completo.
func dateRangeQuery(c *fiber.Ctx) (dto.DateRangeQuery, error) {
	var q dto.DateRangeQuery
	from, err := parseTime(c.Query("from"), false)
	if err != nil {
		return q, fmt.Errorf("%w: from: %v", domain.ErrInvalidInput, err)
	}
	to, err := parseTime(c.Query("to"), true)
	if err != nil {
		return q, fmt.Errorf("%w: to: %v", domain.ErrInvalidInput, err)
	}
	q.From, q.To = from, to
	return q, nil
}

func parseTime(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// optionalInt64 lee un entero opcional; ausente → nil.
func optionalInt64(c *fiber.Ctx, key string) (*int64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidInput, key)
	}
	return &n, nil
}

func stockListQuery(c *fiber.Ctx) (dto.StockListQuery, error) {
	threshold, err := optionalInt64(c, "low_stock_threshold")
	if err != nil {
		return dto.StockListQuery{}, err
	}
	return dto.StockListQuery{
		WarehouseID:       c.Query("warehouse_id"),
		ProductID:         c.Query("product_id"),
		LowStockThreshold: threshold,
		PageRequest:       pageQuery(c),
	}, nil
}

func productListQuery(c *fiber.Ctx) dto.ProductListQuery {
	return dto.ProductListQuery{
		Search:         c.Query("search"),
		ProductGroupID: c.Query("product_group_id"),
		PageRequest:    pageQuery(c),
	}
}

func catalogListQuery(c *fiber.Ctx) dto.CatalogListQuery {
	return dto.CatalogListQuery{Search: c.Query("search"), PageRequest: pageQuery(c)}
}

func transferListQuery(c *fiber.Ctx) (dto.TransferListQuery, error) {
	dr, err := dateRangeQuery(c)
	return dto.TransferListQuery{
		Status:         c.Query("status"),
		WarehouseID:    c.Query("warehouse_id"),
		ProductID:      c.Query("product_id"),
		DateRangeQuery: dr,
		PageRequest:    pageQuery(c),
	}, err
}

func adjustmentListQuery(c *fiber.Ctx) (dto.AdjustmentListQuery, error) {
	dr, err := dateRangeQuery(c)
	return dto.AdjustmentListQuery{
		Type:           c.Query("type"),
		WarehouseID:    c.Query("warehouse_id"),
		ProductID:      c.Query("product_id"),
		DateRangeQuery: dr,
		PageRequest:    pageQuery(c),
	}, err
}

func stockLotListQuery(c *fiber.Ctx) (dto.StockLotListQuery, error) {
	dr, err := dateRangeQuery(c)
	return dto.StockLotListQuery{
		Status:         c.Query("status"),
		WarehouseID:    c.Query("warehouse_id"),
		SupplierID:     c.Query("supplier_id"),
		ProductID:      c.Query("product_id"),
		DateRangeQuery: dr,
		PageRequest:    pageQuery(c),
	}, err
}
