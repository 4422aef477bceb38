// Command lvsearch solves grid puzzles with the lvsearch engines.
//
// Usage:
//
//	lvsearch [--config file] [--input-dir dir] [--format text|yaml]
//	         [--log-level lvl] [--parallel n] [--render] [puzzle...]
//
// Every flag can also come from a LVSEARCH_* environment variable, e.g.
// LVSEARCH_INPUT_DIR.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/puzzles"
	"github.com/katalvlaran/lvsearch/runner"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	log.Debug().
		Str("input_dir", cfg.InputDir).
		Int("parallel", cfg.Parallel).
		Strs("puzzles", cfg.Puzzles).
		Msg("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := runner.Run(ctx, cfg, puzzles.Default())
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
	if err := runner.Write(os.Stdout, reports, cfg.Format); err != nil {
		log.Fatal().Err(err).Msg("writing reports")
	}
}
