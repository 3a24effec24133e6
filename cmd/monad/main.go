package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/d1nch8g/monad/config"
	"github.com/d1nch8g/monad/llm"
	"github.com/d1nch8g/monad/logger"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		PadLevelText:    true,
	})

	// Load local .env if present, before flags read the environment
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := config.Parse()
	if err != nil {
		logrus.Errorf("Error parsing configuration: %v", err)
		os.Exit(1)
	}

	if cfg.Verbose {
		cfg.PrintConfig()
	}

	log, err := logger.New(cfg.GetLogLevel(), cfg.LogFile)
	if err != nil {
		logrus.Errorf("Failed to create logger: %v", err)
		os.Exit(1)
	}
	defer log.Close()

	monad := llm.New(cfg.APIKey, log)

	answer, err := monad.AskQuestion(context.Background(), cfg.Question,
		llm.WithModel(cfg.Model),
		llm.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		logrus.Errorf("Request failed: %v", err)
		os.Exit(1)
	}

	color.Green("%s", answer)
}
