package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-saas/internal/db"
	"github.com/BruksfildServices01/gym-saas/internal/infra/throttle"
	"github.com/BruksfildServices01/gym-saas/internal/logger"
	"github.com/BruksfildServices01/gym-saas/internal/metrics"
	"github.com/BruksfildServices01/gym-saas/internal/routes"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
	ucAccount "github.com/BruksfildServices01/gym-saas/internal/usecase/account"
)

func main() {
	app := fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			provideDB,
			provideLimiter,
			metrics.New,
			provideAudit,
			provideRouter,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.Env, "gym-saas")
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log, nil
}

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		log.Info("closing database pool")
		return dbpkg.Close(db)
	}))
	return db, nil
}

// provideLimiter returns nil when REDIS_ADDR is unset; login is then
// unthrottled.
func provideLimiter(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) ucAccount.AttemptLimiter {
	if cfg.RedisAddr == "" {
		log.Info("login throttle disabled, REDIS_ADDR not set")
		return nil
	}

	client := throttle.NewClient(cfg.RedisAddr)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn("redis unreachable, login throttle fails open", zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return throttle.NewLoginLimiter(client, cfg.LoginMaxAttempts, cfg.LoginWindow)
}

func provideAudit(lc fx.Lifecycle, db *gorm.DB, log *zap.Logger) audit.Recorder {
	d := audit.NewDispatcher(audit.NewWriter(db), log, audit.DefaultQueueSize)

	lc.Append(fx.Hook{
		OnStop: d.Close,
	})
	return d
}

func provideRouter(
	cfg *config.Config,
	db *gorm.DB,
	log *zap.Logger,
	m *metrics.Metrics,
	recorder audit.Recorder,
	limiter ucAccount.AttemptLimiter,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		Audit:   recorder,
		Limiter: limiter,
		Clock:   timezone.NewClock(cfg.Timezone),
	})
	return r
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			log.Info("server running", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}
