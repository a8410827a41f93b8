// cmd/server/main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command server runs the best-move HTTP service.

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	engine "github.com/crosstile/bestmove"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	port := envOr("PORT", "8080")
	wordlistPath := envOr("WORDLIST_PATH", "wordlist.txt")
	accessKey := os.Getenv("ACCESS_KEY")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dict, err := engine.LoadDictionaryFile(wordlistPath)
	if err != nil {
		logger.Error("failed to load dictionary", "path", wordlistPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dictionary loaded",
		"path", wordlistPath,
		"words", humanize.Comma(int64(dict.Len())),
	)

	eng := engine.NewEngine(dict, accessKey)

	mux := http.NewServeMux()
	mux.HandleFunc("/bestGameMove", eng.HandleBestGameMove)
	mux.HandleFunc("/", eng.HandleIndex)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("stopped")
}
