package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/billing"
	"github.com/jhoicas/backoffice-api/internal/application/export"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	infrabarcode "github.com/jhoicas/backoffice-api/internal/infrastructure/barcode"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/cache"
	infracsv "github.com/jhoicas/backoffice-api/internal/infrastructure/csv"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/logger"
	"github.com/jhoicas/backoffice-api/pkg/metrics"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

// @title						Backoffice API
// @version					1.0
// @description				Inventario multi-bodega, lotes de compra, traslados, ajustes y facturación.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.App.Name, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	var (
		m        *metrics.Metrics
		observer ports.MutationObserver
	)
	if cfg.Telemetry.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		observer = m
	}

	var (
		repos ports.Repos
		tx    ports.TxRunner
	)
	switch cfg.App.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		repos, tx = store.Repos(), store.TxRunner()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		repos, tx = postgres.NewRepos(pool), postgres.NewTxRunner(pool)
	}

	// Caché de códigos: opcional, sin Redis se renderiza siempre.
	var codeCache labels.CodeCache
	if cfg.Redis.Enabled() {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de códigos desactivada")
		} else {
			defer client.Close()
			codeCache = cache.NewRedisCache(client)
		}
	}

	ledger := stock.NewLedger(log.Component("ledger"))
	stockLog := log.Component("stock")
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	deps := httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
		Metrics:     m,
		AuthUC: auth.NewAuthUseCase(tx, repos, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log.Component("auth")),
		WarehouseUC:    usecase.NewWarehouseUseCase(repos),
		UnitUC:         usecase.NewUnitUseCase(repos),
		ProductGroupUC: usecase.NewProductGroupUseCase(repos),
		ProductUC:      usecase.NewProductUseCase(repos),
		SupplierUC:     usecase.NewSupplierUseCase(repos),
		CustomerUC:     billing.NewCustomerUseCase(repos),
		StockQueryUC:   stock.NewQueryUseCase(repos),
		TransferUC:     stock.NewTransferUseCase(tx, repos, ledger, observer, stockLog),
		AdjustmentUC:   stock.NewAdjustmentUseCase(tx, repos, ledger, observer, stockLog),
		StockLotUC:     stock.NewStockLotUseCase(tx, repos, ledger, observer, stockLog),
		InvoiceUC:      billing.NewCreateInvoiceUseCase(tx, repos, ledger, observer, log.Component("billing")),
		InvoicePDFUC:   billing.NewPDFUseCase(repos, pdfGenerator),
		LabelsUC: labels.NewUseCase(
			repos,
			infrabarcode.NewPNGRenderer(),
			infrapdf.NewMarotoLabelGenerator(),
			codeCache,
			time.Duration(cfg.Redis.CodeTTLMinutes)*time.Minute,
			log.Component("labels"),
		),
		ExportUC: export.NewUseCase(repos, infracsv.NewWriter()),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init`).
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Backoffice API",
		}))
	}

	httpRouter.Router(app, deps)

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("servidor HTTP")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado HTTP")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado de trazas")
	}
}
