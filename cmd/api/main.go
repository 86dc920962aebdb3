package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/api"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	log, err := logging.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	provider, err := providers.New(context.Background(), cfg)
	if err != nil {
		log.Error("provider init failed", "error", err)
		panic(err)
	}

	srv := api.NewServer(cfg, log, provider)
	log.Info("study-kit api listening", "addr", cfg.APIAddr, "provider", cfg.Provider)
	if err := http.ListenAndServe(cfg.APIAddr, srv.Routes()); err != nil {
		log.Error("server stopped", "error", err)
		panic(err)
	}
}
