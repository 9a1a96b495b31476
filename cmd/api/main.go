package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/config"
	"github.com/xavierca1/admissions-api/internal/entity"
	"github.com/xavierca1/admissions-api/internal/infra/database"
	"github.com/xavierca1/admissions-api/internal/infra/database/memory"
	"github.com/xavierca1/admissions-api/internal/infra/database/mongodb"
	"github.com/xavierca1/admissions-api/internal/infra/http/handlers"
	"github.com/xavierca1/admissions-api/internal/infra/http/middleware"
	"github.com/xavierca1/admissions-api/internal/infra/mail"
	"github.com/xavierca1/admissions-api/internal/infra/queue"
	"github.com/xavierca1/admissions-api/internal/infra/ratelimit"
	"github.com/xavierca1/admissions-api/internal/infra/worker"
	"github.com/xavierca1/admissions-api/internal/logger"
	"github.com/xavierca1/admissions-api/internal/usecase"
)

const version = "1.0.0"

type stores struct {
	leads   entity.LeadRepositoryInterface
	news    entity.NewsRepositoryInterface
	results entity.ResultSessionRepositoryInterface
	health  handlers.HealthCheck
	close   func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// the logger depends on config; fall back to a bare one
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	go worker.NewLeadGaugeWorker(st.leads, time.Minute, log).Start(workerCtx)

	checks := map[string]handlers.HealthCheck{}
	if st.health != nil {
		checks["store"] = st.health
	}

	notifier := newNotifier(cfg, log)

	var publisher usecase.LeadEventPublisher
	if cfg.AMQPURL != "" {
		rabbit, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			return err
		}
		defer rabbit.Close()

		publisher = queue.NewProducer(rabbit.Ch)
		checks["rabbitmq"] = func(ctx context.Context) error {
			if rabbit.Conn.IsClosed() {
				return errors.New("connection closed")
			}
			return nil
		}

		// consumers get their own channel so acks never contend with publishes
		consumeCh, err := rabbit.Conn.Channel()
		if err != nil {
			return err
		}
		defer consumeCh.Close()

		consumer := queue.NewNotificationWorker(consumeCh, notifier, log)
		go func() {
			if err := consumer.Start(workerCtx); err != nil {
				log.Error("notification worker stopped", zap.Error(err))
			}
		}()
		log.Info("lead notifications via rabbitmq")
	} else {
		dispatcher := queue.NewLocalDispatcher(notifier, cfg.LocalQueueSize, log)
		dispatcher.Start(workerCtx, 1)
		defer func() {
			cancelWorkers()
			dispatcher.Wait()
		}()
		publisher = dispatcher
		log.Info("lead notifications via in-process dispatcher")
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	router := handlers.NewRouter(handlers.RouterDeps{
		Leads: handlers.NewLeadHandler(
			usecase.NewSubmitLeadUseCase(st.leads, publisher, log),
			usecase.NewListLeadsUseCase(st.leads),
			usecase.NewUpdateLeadStatusUseCase(st.leads, log),
			log,
		),
		Analytics: handlers.NewAnalyticsHandler(usecase.NewComputeAnalyticsUseCase(st.leads, log), log),
		Auth: handlers.NewAuthHandler(usecase.NewLoginUseCase(usecase.AdminCredentials{
			Email:        cfg.AdminEmail,
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
			Token:        cfg.AdminToken,
		}, log), log),
		News:           handlers.NewNewsHandler(usecase.NewNewsUseCase(st.news, log), log),
		Results:        handlers.NewResultHandler(usecase.NewResultSessionUseCase(st.results, log), log),
		Health:         handlers.NewHealthHandler(version, checks),
		Gate:           middleware.NewAdminGate(cfg.AdminToken),
		IntakeLimiter:  limiter,
		TrustProxy:     cfg.TrustProxy,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("admissions api listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			leads:   database.NewLeadRepository(db),
			news:    database.NewNewsRepository(db),
			results: database.NewResultSessionRepository(db),
			health:  sqlHealth(db),
			close:   func() { db.Close() },
		}, nil

	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return &stores{
			leads:   memory.NewLeadRepository(),
			news:    memory.NewNewsRepository(),
			results: memory.NewResultSessionRepository(),
			close:   func() {},
		}, nil

	default:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Warn("could not ensure mongo indexes", zap.Error(err))
		}
		return &stores{
			leads:   mongodb.NewLeadRepository(db),
			news:    mongodb.NewNewsRepository(db),
			results: mongodb.NewResultSessionRepository(db),
			health:  mongoHealth(client),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				client.Disconnect(ctx)
			},
		}, nil
	}
}

func sqlHealth(db *sql.DB) handlers.HealthCheck {
	return db.PingContext
}

func mongoHealth(client *mongo.Client) handlers.HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

func newNotifier(cfg *config.Config, log *zap.Logger) queue.Notifier {
	if !cfg.MailEnabled() {
		log.Warn("mail not configured, lead notifications are logged only")
		return mail.NopNotifier{Logger: log}
	}
	if cfg.MailProvider == config.MailSendGrid {
		return mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFrom, cfg.NotifyRecipient)
	}
	return mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.NotifyRecipient)
}

func newLimiter(ctx context.Context, cfg *config.Config, log *zap.Logger) (ratelimit.Limiter, func(), error) {
	if cfg.RedisAddr != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		log.Info("intake rate limit backed by redis", zap.String("addr", cfg.RedisAddr))
		return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow), func() { rdb.Close() }, nil
	}

	lim := ratelimit.NewMemoryLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	return lim, lim.Close, nil
}
