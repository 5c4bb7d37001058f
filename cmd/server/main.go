package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/modules/auth"
	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/jwt"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	authsvc "github.com/dmitrymomot/sessionkit/svc/auth"
	"github.com/dmitrymomot/sessionkit/svc/records"
	"github.com/dmitrymomot/sessionkit/svc/session"
)

type appConfig struct {
	LogLevel      slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     logger.Format `env:"LOG_FORMAT" envDefault:"json"`
	JWTSigningKey string        `env:"JWT_SIGNING_KEY,required"`
	CookieSecrets []string      `env:"COOKIE_SECRETS,required"` // comma-separated, newest first

	Redis   cachestore.Config
	Mongo   records.Config
	Session session.Config
	HTTP    httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithService("sessionkit"),
	)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	redisClient, err := cachestore.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	store := cachestore.NewRedisStore(redisClient)

	mongoClient, err := records.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.Mongo.Database)
	source := records.NewMongoSource(db)

	tokens, err := jwt.NewFromString(cfg.JWTSigningKey)
	if err != nil {
		return err
	}
	cookies, err := cookie.New(cfg.CookieSecrets)
	if err != nil {
		return err
	}

	sessions := session.New(store, source, tokens, cookies,
		session.WithConfig(cfg.Session),
		session.WithLogger(log),
	)

	authenticator := authsvc.NewPasswordAuthenticator(authsvc.NewMongoCredentialStorage(db), log)
	authModule := auth.NewService(sessions, authenticator, source, log)

	r := chi.NewRouter()
	r.Get("/health", httpserver.Healthcheck(log, store.Healthcheck()))
	r.Mount("/", authModule.Handle())

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
