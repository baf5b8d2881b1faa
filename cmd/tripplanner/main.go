package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voyagerlab/tripplanner/config"
	"github.com/voyagerlab/tripplanner/llm/openai"
	"github.com/voyagerlab/tripplanner/planner"
	"github.com/voyagerlab/tripplanner/serpapi"
	"github.com/voyagerlab/tripplanner/server"
)

const _missingKeysMessage = `API keys missing.

Please set SERPAPI_KEY and OPENAI_API_KEY in your environment or in a .env file.

Example .env:
SERPAPI_KEY=your_serpapi_key_here
OPENAI_API_KEY=your_openai_key_here`

func main() {
	cfg, err := config.Load(os.Getenv("TP_CONFIG"))
	if err != nil {
		if errors.Is(err, config.ErrMissingSerpAPIKey) || errors.Is(err, config.ErrMissingOpenAIKey) {
			fmt.Fprintln(os.Stderr, _missingKeysMessage)
		} else {
			fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		}
		os.Exit(1)
	}

	model, err := openai.New(
		openai.WithToken(cfg.OpenAIKey),
		openai.WithModel(cfg.OpenAIModel),
		openai.WithBaseURL(cfg.OpenAIBaseURL))
	if err != nil {
		slog.Error("failed to init language model client", "error", err)
		os.Exit(1)
	}

	api := serpapi.NewClient(cfg.SerpAPIKey)
	p, err := planner.New(cfg, model, api)
	if err != nil {
		slog.Error("failed to init planner", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, p)
	go func() {
		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-sigint

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to stop http server", "error", err)
	}
	slog.Info("application gracefully shutdown")
}
