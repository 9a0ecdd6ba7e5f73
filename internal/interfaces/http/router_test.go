package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/billing"
	"github.com/jhoicas/backoffice-api/internal/application/export"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/barcode"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/csv"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/metrics"
)

// newServer arma la API completa sobre el almacenamiento en memoria.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	repos, tx := store.Repos(), store.TxRunner()
	log := zerolog.Nop()
	m := metrics.New(prometheus.NewRegistry())
	ledger := stock.NewLedger(log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(log, m))
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName:    "backoffice-test",
		JWTSecret:      testJWTSecret,
		Metrics:        m,
		AuthUC:         auth.NewAuthUseCase(tx, repos, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}, log),
		WarehouseUC:    usecase.NewWarehouseUseCase(repos),
		UnitUC:         usecase.NewUnitUseCase(repos),
		ProductGroupUC: usecase.NewProductGroupUseCase(repos),
		ProductUC:      usecase.NewProductUseCase(repos),
		SupplierUC:     usecase.NewSupplierUseCase(repos),
		CustomerUC:     billing.NewCustomerUseCase(repos),
		StockQueryUC:   stock.NewQueryUseCase(repos),
		TransferUC:     stock.NewTransferUseCase(tx, repos, ledger, m, log),
		AdjustmentUC:   stock.NewAdjustmentUseCase(tx, repos, ledger, m, log),
		StockLotUC:     stock.NewStockLotUseCase(tx, repos, ledger, m, log),
		InvoiceUC:      billing.NewCreateInvoiceUseCase(tx, repos, ledger, m, log),
		InvoicePDFUC:   billing.NewPDFUseCase(repos, pdf.NewMarotoPDFGenerator()),
		LabelsUC:       labels.NewUseCase(repos, barcode.NewPNGRenderer(), pdf.NewMarotoLabelGenerator(), nil, 0, log),
		ExportUC:       export.NewUseCase(repos, csv.NewWriter()),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// expect verifica status y, si se pide, decodifica el cuerpo.
func expect(t *testing.T, resp *http.Response, status int, out any) {
	t.Helper()
	if resp.StatusCode != status {
		b, _ := io.ReadAll(resp.Body)
		require.Equalf(t, status, resp.StatusCode, "body: %s", b)
	}
	if out != nil {
		decode(t, resp, out)
	} else {
		resp.Body.Close()
	}
}

type idResp struct {
	ID string `json:"id"`
}

type errResp struct {
	Code string `json:"code"`
}

// register crea una tienda y devuelve el token del administrador.
func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	expect(t, call(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"store_name": "Tienda Centro", "name": "Admin", "email": email, "password": "supersecreta",
	}), http.StatusCreated, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

type catalog struct {
	main, branch, supplier, product string
}

func seedCatalog(t *testing.T, app *fiber.App, token string) catalog {
	t.Helper()
	var c catalog
	var r idResp
	expect(t, call(t, app, http.MethodPost, "/api/warehouses", token, map[string]any{"name": "Principal"}), http.StatusCreated, &r)
	c.main = r.ID
	expect(t, call(t, app, http.MethodPost, "/api/warehouses", token, map[string]any{"name": "Sucursal"}), http.StatusCreated, &r)
	c.branch = r.ID
	expect(t, call(t, app, http.MethodPost, "/api/suppliers", token, map[string]any{"name": "Distribuidora"}), http.StatusCreated, &r)
	c.supplier = r.ID
	expect(t, call(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"sku": "CAF-500", "name": "Café 500g", "price": "18000", "tax_rate": "19",
	}), http.StatusCreated, &r)
	c.product = r.ID
	return c
}

func TestHealth(t *testing.T) {
	app := newServer(t)
	var out map[string]string
	expect(t, call(t, app, http.MethodGet, "/health", "", nil), http.StatusOK, &out)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "backoffice-test", out["service"])
}

func TestMetrics_ExponeContadoresHTTP(t *testing.T) {
	app := newServer(t)
	expect(t, call(t, app, http.MethodGet, "/health", "", nil), http.StatusOK, nil)

	resp := call(t, app, http.MethodGet, "/metrics", "", nil)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	app := newServer(t)
	register(t, app, "admin@tienda.co")

	var login struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	expect(t, call(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "admin@tienda.co", "password": "supersecreta",
	}), http.StatusOK, &login)
	assert.Equal(t, "admin", login.User.Role)

	var me struct {
		Email string `json:"email"`
	}
	expect(t, call(t, app, http.MethodGet, "/api/auth/me", login.Token, nil), http.StatusOK, &me)
	assert.Equal(t, "admin@tienda.co", me.Email)

	var e errResp
	expect(t, call(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "admin@tienda.co", "password": "incorrecta",
	}), http.StatusUnauthorized, &e)
	assert.Equal(t, "UNAUTHORIZED", e.Code)

	expect(t, call(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"store_name": "Otra", "name": "Admin", "email": "admin@tienda.co", "password": "supersecreta",
	}), http.StatusConflict, &e)
	assert.Equal(t, "EMAIL_EXISTS", e.Code)
}

func TestProtected_SinToken(t *testing.T) {
	app := newServer(t)
	var e errResp
	expect(t, call(t, app, http.MethodGet, "/api/warehouses", "", nil), http.StatusUnauthorized, &e)
	assert.Equal(t, "MISSING_TOKEN", e.Code)
}

func TestStockFlow_LoteTrasladoYStockInsuficiente(t *testing.T) {
	app := newServer(t)
	token := register(t, app, "admin@tienda.co")
	c := seedCatalog(t, app, token)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	expect(t, call(t, app, http.MethodPost, "/api/stock-lots", token, map[string]any{
		"warehouse_id": c.main, "supplier_id": c.supplier, "product_id": c.product,
		"lot_reference_no": "L-1", "quantity": 10, "purchase_price": "1000",
		"purchase_date": date, "status": "DELIVERED",
	}), http.StatusCreated, nil)

	expect(t, call(t, app, http.MethodPost, "/api/transfers", token, map[string]any{
		"from_warehouse_id": c.main, "to_warehouse_id": c.branch, "product_id": c.product,
		"quantity": 4, "status": "COMPLETED", "transfer_date": date,
	}), http.StatusCreated, nil)

	var level struct {
		Quantity int64 `json:"quantity"`
	}
	expect(t, call(t, app, http.MethodGet, "/api/stock/"+c.product+"/"+c.branch, token, nil), http.StatusOK, &level)
	assert.Equal(t, int64(4), level.Quantity)
	expect(t, call(t, app, http.MethodGet, "/api/stock/"+c.product+"/"+c.main, token, nil), http.StatusOK, &level)
	assert.Equal(t, int64(6), level.Quantity)

	var e errResp
	expect(t, call(t, app, http.MethodPost, "/api/transfers", token, map[string]any{
		"from_warehouse_id": c.main, "to_warehouse_id": c.branch, "product_id": c.product,
		"quantity": 20, "status": "COMPLETED", "transfer_date": date,
	}), http.StatusConflict, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)

	expect(t, call(t, app, http.MethodPost, "/api/transfers", token, map[string]any{
		"from_warehouse_id": c.main, "to_warehouse_id": c.main, "product_id": c.product,
		"quantity": 1, "transfer_date": date,
	}), http.StatusBadRequest, &e)
	assert.Equal(t, "VALIDATION", e.Code)

	var list struct {
		Items []idResp `json:"items"`
		Page  struct {
			Total int `json:"total"`
		} `json:"page"`
	}
	expect(t, call(t, app, http.MethodGet, "/api/transfers?warehouse_id="+c.branch, token, nil), http.StatusOK, &list)
	assert.Equal(t, 1, list.Page.Total)

	var movements struct {
		Page struct {
			Total int `json:"total"`
		} `json:"page"`
	}
	expect(t, call(t, app, http.MethodGet, "/api/stock/movements?product_id="+c.product, token, nil), http.StatusOK, &movements)
	assert.Equal(t, 3, movements.Page.Total) // recepción + salida + entrada del traslado
}

func TestRoles_VendedorNoMueveStock(t *testing.T) {
	app := newServer(t)
	token := register(t, app, "admin@tienda.co")
	c := seedCatalog(t, app, token)

	expect(t, call(t, app, http.MethodPost, "/api/users", token, map[string]any{
		"name": "Vendedor", "email": "ventas@tienda.co", "password": "supersecreta", "role": "vendedor",
	}), http.StatusCreated, nil)
	var login struct {
		Token string `json:"token"`
	}
	expect(t, call(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ventas@tienda.co", "password": "supersecreta",
	}), http.StatusOK, &login)

	var e errResp
	expect(t, call(t, app, http.MethodPost, "/api/adjustments", login.Token, map[string]any{
		"warehouse_id": c.main, "product_id": c.product, "quantity": 5, "type": "INCREASE",
		"adjustment_date": time.Now().UTC(),
	}), http.StatusForbidden, &e)
	assert.Equal(t, "FORBIDDEN", e.Code)

	expect(t, call(t, app, http.MethodDelete, "/api/products/"+c.product, login.Token, nil), http.StatusForbidden, nil)
	expect(t, call(t, app, http.MethodGet, "/api/products/"+c.product, login.Token, nil), http.StatusOK, nil)
}

func TestTenancy_OtraTiendaNoVeLosRecursos(t *testing.T) {
	app := newServer(t)
	c := seedCatalog(t, app, register(t, app, "a@tienda.co"))
	other := register(t, app, "b@tienda.co")

	var e errResp
	expect(t, call(t, app, http.MethodGet, "/api/warehouses/"+c.main, other, nil), http.StatusNotFound, &e)
	assert.Equal(t, "NOT_FOUND", e.Code)
	expect(t, call(t, app, http.MethodGet, "/api/products/"+c.product+"/barcode", other, nil), http.StatusNotFound, nil)
}

func TestErrores_BodyYFechaInvalidos(t *testing.T) {
	app := newServer(t)
	token := register(t, app, "admin@tienda.co")

	req := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader("{no-json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var e errResp
	expect(t, resp, http.StatusBadRequest, &e)
	assert.Equal(t, "INVALID_BODY", e.Code)

	expect(t, call(t, app, http.MethodGet, "/api/transfers?from=ayer", token, nil), http.StatusBadRequest, &e)
	assert.Equal(t, "VALIDATION", e.Code)

	expect(t, call(t, app, http.MethodGet, "/api/warehouses/"+uuid.NewString(), token, nil), http.StatusNotFound, &e)
	assert.Equal(t, "NOT_FOUND", e.Code)

	expect(t, call(t, app, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Bancolombia", "tax_id": "890903938-1",
	}), http.StatusBadRequest, &e)
	assert.Equal(t, "VALIDATION", e.Code)
	expect(t, call(t, app, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Bancolombia", "tax_id": "890903938-8",
	}), http.StatusCreated, nil)
}

func TestBarcodeYExport(t *testing.T) {
	app := newServer(t)
	token := register(t, app, "admin@tienda.co")
	c := seedCatalog(t, app, token)

	resp := call(t, app, http.MethodGet, "/api/products/"+c.product+"/barcode?width=300&height=100", token, nil)
	png, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "\x89PNG", string(png[:4]))

	resp = call(t, app, http.MethodGet, "/api/export/products", token, nil)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, string(body), "sku,barcode,name,description,price,tax_rate\n")
	assert.Contains(t, string(body), "CAF-500,,Café 500g,,18000.00,19\n")

	resp = call(t, app, http.MethodPost, "/api/labels", token, map[string]any{
		"product_ids": []string{c.product}, "kind": "barcode", "copies": 3,
	})
	pdfBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestInvoice_EmiteYDescargaPDF(t *testing.T) {
	app := newServer(t)
	token := register(t, app, "admin@tienda.co")
	c := seedCatalog(t, app, token)

	expect(t, call(t, app, http.MethodPost, "/api/adjustments", token, map[string]any{
		"warehouse_id": c.main, "product_id": c.product, "quantity": 5, "type": "INCREASE",
		"adjustment_date": time.Now().UTC(),
	}), http.StatusCreated, nil)
	var customer idResp
	expect(t, call(t, app, http.MethodPost, "/api/customers", token, map[string]any{
		"name": "Cliente Mostrador", "tax_id": "222222222",
	}), http.StatusCreated, &customer)

	var inv struct {
		ID         string `json:"id"`
		GrandTotal decimal.Decimal `json:"grand_total"`
	}
	expect(t, call(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_id": customer.ID, "warehouse_id": c.main, "prefix": "FV",
		"items": []map[string]any{{"product_id": c.product, "quantity": 2}},
	}), http.StatusCreated, &inv)
	assert.Equal(t, "42840.00", inv.GrandTotal.StringFixed(2)) // 36000 + 19%

	resp := call(t, app, http.MethodGet, "/api/invoices/"+inv.ID+"/pdf", token, nil)
	pdfBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	var e errResp
	expect(t, call(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_id": customer.ID, "warehouse_id": c.main, "prefix": "FV",
		"items": []map[string]any{{"product_id": c.product, "quantity": 10}},
	}), http.StatusConflict, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
}
