package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rocketscienceinc/tictactoe4x4/internal/config"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/rocketscienceinc/tictactoe4x4/internal/syncclient"
)

// main - is the entry point of the terminal client.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf := config.MustLoad(filepath.Join(baseDir, "./config.yml"))
	logger := config.NewLogger(os.Stderr, conf.LogLevel)

	mode, err := entity.ParseMode(conf.Client.Mode)
	if err != nil {
		panic(err)
	}

	difficulty, err := entity.ParseDifficulty(conf.Client.Difficulty)
	if err != nil {
		panic(err)
	}

	api := syncclient.NewHTTPAPI(conf.Client.ServerURL, syncclient.APIOptions{
		RequestTimeout: conf.Client.RequestTimeout,
		MaxRetries:     conf.Client.MaxRetries,
	})
	client := syncclient.New(logger, api, mode, difficulty)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repl := newREPL(client, os.Stdin, os.Stdout)

	if conf.Client.Watch {
		wsURL, err := syncclient.WatchURL(conf.Client.ServerURL)
		if err != nil {
			panic(err)
		}

		go func() {
			if err := client.Watch(ctx, wsURL, repl.render); err != nil {
				logger.Error("watch stopped", "error", err)
			}
		}()
	}

	if err = repl.run(ctx); err != nil {
		logger.Error("client stopped", "error", err)
		os.Exit(1)
	}
}
