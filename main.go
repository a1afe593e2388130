package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"AtsAssistant/ai"
	"AtsAssistant/ai/gemini"
	"AtsAssistant/ai/gpt"
	"AtsAssistant/bot"
	"AtsAssistant/impl/core"
	"AtsAssistant/internal/catalog"
	"AtsAssistant/internal/config"
	"AtsAssistant/internal/database"
	"AtsAssistant/internal/favorites"
	"AtsAssistant/internal/http-server/api"
	"AtsAssistant/internal/lib/logger"
	"AtsAssistant/internal/lib/sl"
	"AtsAssistant/internal/metrics"
	"AtsAssistant/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			// errors go to the admin chat as well
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting ats assistant", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	ctx := context.Background()

	schools, err := catalog.Load(conf.Catalog.DatasetPath)
	if err != nil {
		lg.Error("load catalog", sl.Err(err))
		return
	}

	var db *repository.MongoDB
	if conf.Mongo.Enabled {
		db = repository.NewMongoClient(repository.Config{
			Host:     conf.Mongo.Host,
			Port:     conf.Mongo.Port,
			User:     conf.Mongo.User,
			Password: conf.Mongo.Password,
			Database: conf.Mongo.Database,
		}, lg)
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = db.Ping(pingCtx)
		cancel()
		if err != nil {
			lg.Error("mongo client", sl.Err(err))
			db = nil
		} else {
			lg.With(
				slog.String("host", conf.Mongo.Host),
				slog.String("port", conf.Mongo.Port),
				slog.String("user", conf.Mongo.User),
				slog.String("database", conf.Mongo.Database),
			).Info("mongo client initialized")
		}
	}

	if conf.Catalog.Source == "mongo" && db != nil {
		stored, err := catalog.LoadFromStore(ctx, db, schools)
		if err != nil {
			lg.Error("load catalog from mongo, using dataset", sl.Err(err))
		} else {
			schools = stored
		}
	}
	lg.Info("catalog loaded", slog.Int("schools", schools.Len()))

	handler := core.New(lg, schools)
	if db != nil {
		handler.SetHistory(db)
	}

	if conf.Redis.Enabled {
		client, err := favorites.NewRedis(ctx, favorites.RedisConfig{
			Host:     conf.Redis.Host,
			Port:     conf.Redis.Port,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err != nil {
			lg.Error("redis client, favorites kept in memory", sl.Err(err))
		} else {
			handler.SetFavoritesStore(favorites.NewRedisStore(client, conf.Redis.TTL))
			lg.With(
				slog.String("host", conf.Redis.Host),
				slog.Int("port", conf.Redis.Port),
			).Info("redis favorites store initialized")
		}
	}

	assistant, err := newAssistant(ctx, conf, lg)
	if err != nil {
		lg.Error("assistant not initialized", sl.Err(err))
	} else {
		handler.SetAssistant(assistant)
		lg.With(
			slog.String("provider", conf.Assistant.Provider),
			sl.Secret("gemini_key", conf.Gemini.ApiKey),
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
		).Info("assistant initialized")
	}

	mc := metrics.New()
	handler.SetMetrics(mc)

	hub := ws.NewHub(lg)
	hub.SetHandler(handler)
	go hub.Run()

	if tgBot != nil {
		tgBot.SetCore(handler)
		go func() {
			if err := tgBot.Start(); err != nil {
				lg.Error("telegram bot error", sl.Err(err))
			}
		}()
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub, mc)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}

func newAssistant(ctx context.Context, conf *config.Config, lg *slog.Logger) (ai.Assistant, error) {
	switch conf.Assistant.Provider {
	case "openai":
		client, err := gpt.New(gpt.Config{
			ApiKey:       conf.OpenAI.ApiKey,
			Model:        conf.Assistant.Model,
			Temperature:  conf.Assistant.Temperature,
			HistoryTurns: conf.Assistant.HistoryTurns,
		}, lg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		client, err := gemini.New(ctx, gemini.Config{
			ApiKey:      conf.Gemini.ApiKey,
			Model:       conf.Assistant.Model,
			Temperature: conf.Assistant.Temperature,
		}, lg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
