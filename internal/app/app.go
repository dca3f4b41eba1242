package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rdewanto/storefront-service/config"
	"github.com/rdewanto/storefront-service/internal/controller"
	circuitbreaker "github.com/rdewanto/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/rdewanto/storefront-service/internal/infrastructure/tracing"
	"github.com/rdewanto/storefront-service/internal/middleware"
	"github.com/rdewanto/storefront-service/internal/repository"
	"github.com/rdewanto/storefront-service/internal/service"
	"github.com/rdewanto/storefront-service/pkg/auth"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	KafkaReader   *kafka.Reader
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
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

	tracer := traceProvider.Tracer("storefront-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty prefix so metrics aggregate across services without renaming
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(middleware.Logger)

	isLoggedIn := echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	notifier := auth.CreateNotifier()
	go func() {
		for ev := range notifier.Subscribe() {
			log.Info().Str("user_id", ev.UserID).Bool("logged_in", ev.LoggedIn).Msg("Session state changed")
		}
	}()

	productRepo := repository.CreateNewProductRepository(app.DB)
	reviewRepo := repository.CreateNewReviewRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	var mailer utils.Mailer
	if app.Config.SMTPConfig.Host != "" {
		mailer = utils.CreateSMTPMailer(app.Config.SMTPConfig.Host, app.Config.SMTPConfig.Port, app.Config.SMTPConfig.Sender, app.Config.SMTPConfig.Password)
	}
	cb := circuitbreaker.CreateCircuitBreaker("storefront-service")

	productSvc := service.CreateProductService(productRepo, reviewRepo)
	reviewSvc := service.CreateReviewService(reviewRepo, productRepo, app.KafkaReader, app.KafkaProducer)
	userSvc := service.CreateUserService(userRepo, *app.Config, notifier, mailer, cb)

	controller.CreateProductController(g, productSvc)
	controller.CreateReviewController(g, reviewSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return pkgdto.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	go reviewSvc.ConsumeEvent()

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			10*time.Minute,
		),
		gocron.NewTask(
			reviewSvc.ReconcileProductRatings,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	app.Server = e
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
