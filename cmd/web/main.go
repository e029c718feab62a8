package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"claimpilot/internal/config"
	"claimpilot/internal/gateway"
	"claimpilot/internal/logger"
	"claimpilot/internal/session"
	"claimpilot/internal/web"
	"claimpilot/internal/web/handlers"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	cfg, err := config.FromEnv()
	if err != nil {
		lg.Fatalw("configuration invalid", "error", err)
	}

	gw := gateway.New(cfg.APIBaseURL, cfg.GatewayTimeout, lg)
	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewProvider(gw, codec, lg)

	rd, err := handlers.NewRenderer(lg)
	if err != nil {
		lg.Fatalw("template parse failed", "error", err)
	}

	router := web.NewRouter(gw, sessions, rd, lg)
	lg.Infow("listening", "port", cfg.HTTPPort, "api", cfg.APIBaseURL)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
