package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jmcalvo/puntoventa-api/internal/application/auth"
	"github.com/jmcalvo/puntoventa-api/internal/application/ledger"
	"github.com/jmcalvo/puntoventa-api/internal/application/order"
	"github.com/jmcalvo/puntoventa-api/internal/application/sale"
	"github.com/jmcalvo/puntoventa-api/internal/application/usecase"
	"github.com/jmcalvo/puntoventa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jmcalvo/puntoventa-api/internal/interfaces/http"
	"github.com/jmcalvo/puntoventa-api/pkg/config"
	"github.com/jmcalvo/puntoventa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos sobre el pool para lecturas sueltas; el runner ata su propio
	// juego a cada transacción.
	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderUC := order.NewUseCase(txRunner, repos)
	saleUC := sale.NewUseCase(txRunner, repos)
	transactionUC := ledger.NewUseCase(txRunner, repos)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Branches)
	branchUC := usecase.NewBranchUseCase(repos.Branches)
	clientUC := usecase.NewClientUseCase(repos.Clients)
	userUC := usecase.NewUserUseCase(repos.Users, repos.Branches)
	authUC := auth.NewUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if docs := httpRouter.SwaggerDocs("./docs/swagger.json", "PuntoVenta API"); docs != nil {
		app.Use(docs)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		BranchUC:      branchUC,
		ClientUC:      clientUC,
		UserUC:        userUC,
		OrderUC:       orderUC,
		SaleUC:        saleUC,
		TransactionUC: transactionUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
