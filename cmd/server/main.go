package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpadapter "resume-composer/internal/adapter/http"
	"resume-composer/internal/config"
	"resume-composer/internal/render"
	"resume-composer/internal/usecase"
	"resume-composer/pkg/ai"
	"resume-composer/pkg/infrastructure"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: $RESUME_COMPOSER_CONFIG, then ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	log, err := infrastructure.NewLogger(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	// nil client means completion-backed endpoints answer 503 while
	// extraction and rendering keep working.
	var client *ai.Client
	if cfg.OpenAI.APIKey != "" {
		client = ai.NewClient(ai.Config{
			BaseURL:           cfg.OpenAI.BaseURL,
			APIKey:            cfg.OpenAI.APIKey,
			Timeout:           cfg.OpenAI.Timeout(),
			MaxRetries:        cfg.OpenAI.MaxRetries,
			RequestsPerMinute: cfg.OpenAI.RequestsPerMinute,
			Parse:             ai.ModelParams(cfg.OpenAI.Parse),
			Optimize:          ai.ModelParams(cfg.OpenAI.Optimize),
		})
	} else {
		log.Warnw("OPENAI_API_KEY not set, completion-backed endpoints disabled")
	}

	style, err := cfg.Render.Style()
	if err != nil {
		log.Fatalw("render config", "error", err)
	}

	processor := usecase.NewProcessor(client, render.NewEngine(style), log)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())

	httpadapter.NewHandler(processor, cfg.Upload, log).Register(app)

	go func() {
		log.Infow("listening", "addr", cfg.Server.Addr())
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			log.Fatalw("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Infow("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Errorw("shutdown", "error", err)
	}
}
