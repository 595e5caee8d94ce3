package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/careloop/assessment/assessments"
	"github.com/careloop/assessment/codes"
	"github.com/careloop/assessment/config"
	"github.com/careloop/assessment/enrollments"
	"github.com/careloop/assessment/errors"
	"github.com/careloop/assessment/logger"
	"github.com/careloop/assessment/observations"
	"github.com/careloop/assessment/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%v", cfg.HttpPort)); err != nil {
					log.Errorw("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is
			// ensured by taking a dependency on mongo in the constructor,
			// because lifecycle hooks are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip request logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	logging := echozap.ZapLogger(log)

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := logging(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return logged(c)
		}
	})

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.POST("/v1/assessments", handler.AssessBatch)
	e.GET("/v1/assessments/fields", handler.ListAssessmentFields)

	return e, nil
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			codes.NewResolver,
			observations.NewRepository,
			enrollments.NewRepository,
			assessments.NewService,
			NewHandler,
			NewHealthCheck,
			NewServer,
		),
	}
}

func MainLoop() {
	opts := append(Dependencies(), fx.Invoke(Start, SetReady))
	fx.New(opts...).Run()
}
