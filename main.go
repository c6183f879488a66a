package main

import (
	"RepairDesk/bot"
	"RepairDesk/impl/core"
	"RepairDesk/internal/config"
	"RepairDesk/internal/database"
	"RepairDesk/internal/http-server/api"
	"RepairDesk/internal/lib/logger"
	"RepairDesk/internal/lib/sl"
	"RepairDesk/internal/service/catalog"
	"RepairDesk/internal/service/repairapi"
	"RepairDesk/internal/service/session"
	"RepairDesk/internal/ws"
	"RepairDesk/workflow"
	"RepairDesk/workflows/booking"
	"RepairDesk/workflows/selldevice"
	"context"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if conf.LogPath != "" {
		*logPath = conf.LogPath
	}
	lg := logger.SetupLogger(conf.Env, *logPath)

	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting repairdesk", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.Error("mongo client", sl.Err(err))
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	} else {
		lg.Warn("mongo disabled, records are kept in memory")
	}

	if err = handler.SeedCatalog(context.Background(), catalog.DefaultServices(), catalog.DefaultTimeSlots()); err != nil {
		lg.Error("seed catalog", sl.Err(err))
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetBroadcaster(hub)

	if tgBot != nil {
		handler.SetNotifier(tgBot)
		tgBot.SetRecords(handler)
		go func() {
			if err := tgBot.Start(); err != nil {
				lg.Error("telegram bot error", sl.Err(err))
			}
		}()
	}

	// Workflows talk to a remote booking/sale API when one is configured,
	// otherwise to this service's own core.
	var (
		bookingAPI    booking.API    = handler
		saleAPI       selldevice.API = handler
		catalogRemote catalog.Remote = handler
	)
	if conf.RepairApi.BaseURL != "" {
		client := repairapi.NewRepairApiService(conf, lg)
		bookingAPI, saleAPI, catalogRemote = client, client, client
		lg.With(
			slog.String("url", conf.RepairApi.BaseURL),
			sl.Secret("api_key", conf.RepairApi.ApiKey),
		).Info("remote repair api initialized")
	}

	catalogService := catalog.NewCatalogService(catalogRemote, conf.Catalog.TTL, lg)
	handler.SetCatalog(catalogService)

	sessions := session.NewSessionManager(conf.Session.TTL, conf.Session.Cleanup, lg)
	engine := workflow.NewEngine(sessions, lg)

	bookingDef, err := booking.NewDefinition(bookingAPI, catalogService, conf.Pricing.CacheSize)
	if err != nil {
		lg.Error("booking workflow", sl.Err(err))
		return
	}
	sellDef, err := selldevice.NewDefinition(saleAPI, conf.Pricing.CacheSize)
	if err != nil {
		lg.Error("sell-device workflow", sl.Err(err))
		return
	}
	for _, def := range []*workflow.Definition{bookingDef, sellDef} {
		if err = engine.RegisterWorkflow(def); err != nil {
			lg.Error("register workflow", slog.String("workflow_id", string(def.ID)), sl.Err(err))
			return
		}
	}
	handler.SetWorkflowEngine(engine)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
