package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"card-battle-server/ability"
	"card-battle-server/api"
	"card-battle-server/config"
	"card-battle-server/game"
	"card-battle-server/loghandler"
	"card-battle-server/session"
	"card-battle-server/storage"
	"card-battle-server/ws"
)

func main() {
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stdout, slog.LevelInfo)))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables", "tag", "main")
	}

	cfg := config.Load()
	slog.Info("configuration loaded", "tag", "main",
		"hand_size", cfg.HandSize, "round_base_points", cfg.RoundBasePoints,
		"strict_turns", cfg.StrictTurns, "redact_hands", cfg.RedactHands, "ws_port", cfg.WSPort)

	ctx := context.Background()

	var store *storage.Store
	var sink game.ScoreSink
	if cfg.DatabaseURL != "" {
		var err error
		store, err = storage.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("storage disabled", "tag", "main", "err", err)
		} else {
			defer store.Close()
			sink = store
			slog.Info("score award store connected", "tag", "main")
		}
	} else {
		slog.Info("DATABASE_URL not set, score awards will not be persisted", "tag", "main")
	}

	registry := ability.NewRegistry()
	ability.RegisterAll(registry)

	sessions := session.NewRegistry(cfg, registry, sink)

	hub := ws.NewHub(cfg, sessions)
	go hub.Run(ctx)

	apiHandler := api.NewHandler(cfg, store)

	router := mux.NewRouter()
	router.HandleFunc("/game/{sessionID}/{participantID}", hub.ServeWS)
	router.HandleFunc("/api/history", apiHandler.History)

	addr := fmt.Sprintf(":%d", cfg.WSPort)
	slog.Info("card battle server listening", "tag", "main", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server stopped", "tag", "main", "err", err)
		os.Exit(1)
	}
}
