package main

import (
	"context"
	"os"
	"os/signal"

	"owner/config"
	"owner/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const configPath = "config.yaml"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := configPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := experiments.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
