package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/kory-delivery/docs"
	"github.com/SergeyBogomolovv/kory-delivery/internal/app"
	"github.com/SergeyBogomolovv/kory-delivery/internal/bot"
	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/config"
	"github.com/SergeyBogomolovv/kory-delivery/internal/handler"
	"github.com/SergeyBogomolovv/kory-delivery/internal/jobs"
	"github.com/SergeyBogomolovv/kory-delivery/internal/middleware"
	"github.com/SergeyBogomolovv/kory-delivery/internal/postgres"
	"github.com/SergeyBogomolovv/kory-delivery/internal/pricing"
	"github.com/SergeyBogomolovv/kory-delivery/internal/provider"
	"github.com/SergeyBogomolovv/kory-delivery/internal/repo"
	"github.com/SergeyBogomolovv/kory-delivery/internal/service"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/cache"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Kory Delivery API
// @version         1.0
// @description     HTTP API шлюза заказов и администрирования
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
		logger.Info("migrations applied")
	}

	cat, err := catalog.Load(conf.CatalogPath)
	panicIfErr("failed to load catalog", err)

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	rateCache := cache.NewLRUCache(conf.Rates.CacheCapacity, conf.Rates.CacheTTL)
	cbr := provider.NewCBR(logger, conf.Rates.ProviderURL, conf.Rates.ProviderTimeout)
	rateService := service.NewRateService(logger, rateCache, pgRepo, cbr, conf.Rates.ProviderTimeout, conf.Rates.Location())

	engine := pricing.NewEngine(cat, rateService)
	orderService := service.NewOrderService(logger, txManager, pgRepo)
	adminService := service.NewAdminService(logger, orderService, conf.Admin.UserIDs)

	sessionCache := cache.NewLRUCache(conf.Sessions.Capacity, conf.Sessions.IdleTimeout)
	sessions := bot.NewSessionStore(logger, sessionCache)
	machine := bot.NewMachine(logger, cat, sessions, engine, orderService)
	chatBot := bot.NewBot(logger, machine, cat, orderService, adminService)

	httpHandler := handler.NewHTTPHandler(logger, chatBot, orderService, adminService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, chatBot)

	warmUp := jobs.NewRateWarmUpJob(logger, rateService, cat.RatePairs(), conf.Rates.WarmUpSchedule, conf.Rates.ProviderTimeout, conf.Rates.Location())

	service.RegisterMetrics()
	handler.RegisterMetrics()
	middleware.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(rateCache, sessionCache)
	app.SetJobs(warmUp)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
