package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022/input"
)

type config struct {
	Inputs   string
	Examples string
	LogLevel string
}

var cfg = config{
	Inputs:   input.DefaultInputs,
	Examples: input.DefaultExamples,
	LogLevel: "info",
}

// loadConfig reads an optional .env and then the environment.
func loadConfig() config {
	_ = godotenv.Load()
	return config{
		Inputs:   getEnv("AOC_INPUTS", input.DefaultInputs),
		Examples: getEnv("AOC_EXAMPLES", input.DefaultExamples),
		LogLevel: getEnv("AOC_LOG_LEVEL", "info"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func setupLogging(level string, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
