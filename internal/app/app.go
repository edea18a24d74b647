package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/palrajin0126/admin-panel/config"
	"github.com/palrajin0126/admin-panel/internal/controller"
	"github.com/palrajin0126/admin-panel/internal/infrastructure/tracing"
	localmiddleware "github.com/palrajin0126/admin-panel/internal/middleware"
	"github.com/palrajin0126/admin-panel/internal/repository"
	"github.com/palrajin0126/admin-panel/internal/service"
	"github.com/palrajin0126/admin-panel/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB        *sqlx.DB
	Mongo     *mongo.Database
	Publisher service.EventPublisher
	Config    *config.Config
	Server    *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("admin-panel")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	isLoggedIn := localmiddleware.IsLoggedIn(app.Config.JWTSecret)

	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)
	orderRepo := repository.CreateOrderRepository(app.DB)
	catalogRepo := repository.CreateMongoDBCatalogRepository(app.Mongo)

	productSvc := service.CreateProductService(productRepo, catalogRepo, *app.Config, app.Publisher)
	cartSvc := service.CreateCartService(cartRepo, catalogRepo)
	orderSvc := service.CreateOrderService(orderRepo)
	categorySvc := service.CreateCategoryService(catalogRepo)

	controller.CreateController(g, productSvc, cartSvc, orderSvc, categorySvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
