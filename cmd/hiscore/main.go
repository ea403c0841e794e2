package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/hiscore/config"
	"github.com/domino14/hiscore/dataloaders"
	"github.com/domino14/hiscore/display"
	"github.com/domino14/hiscore/leaderboard"
	"github.com/domino14/hiscore/rackgen"
	"github.com/domino14/hiscore/runner"
)

var (
	GitVersion string
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

// adjustDataPaths looks for the data files next to the executable when they
// can't be found relative to the working directory.
func adjustDataPaths(cfg *config.Config) {
	if _, err := os.Stat(cfg.GetString(config.ConfigWordListPath)); err == nil {
		return
	}
	ex, err := os.Executable()
	if err != nil {
		return
	}
	exPath := filepath.Dir(ex)
	log.Debug().Str("executable-path", exPath).Msg("looking for data next to executable")
	cfg.AdjustRelativePaths(exPath)
}

func newService(cfg *config.Config) (*leaderboard.Service, error) {
	loader := dataloaders.NewLoader(cfg)
	dict, err := loader.WordList(cfg.GetString(config.ConfigWordListPath))
	if err != nil {
		return nil, err
	}
	values, err := loader.LetterValues(cfg.GetString(config.ConfigLetterValuesPath))
	if err != nil {
		return nil, err
	}

	var racks leaderboard.RackSource
	if r := cfg.GetString(config.ConfigRack); r != "" {
		racks = rackgen.Fixed(strings.ToLower(r))
	} else {
		racks = rackgen.NewRandom(cfg.GetInt(config.ConfigRackSize))
	}

	log.Info().Str("lexicon", dict.Name()).Int("num-words", dict.NumWords()).
		Int("num-letters", values.NumLetters()).Msg("loaded data")

	return leaderboard.NewService(dict, values, racks,
		leaderboard.WithLength(cfg.GetInt(config.ConfigLeaderboardLen)),
		leaderboard.WithMinWordLength(cfg.GetInt(config.ConfigMinWordLength)),
		leaderboard.WithRackSize(cfg.GetInt(config.ConfigRackSize)),
	), nil
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	svc, err := newService(cfg)
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx, svc, cfg.GetInt(config.ConfigRounds), cfg.GetInt(config.ConfigParallelism))
	if err != nil {
		return err
	}
	return display.Write(out, cfg.GetString(config.ConfigOutput), results)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	if GitVersion != "" {
		log.Debug().Str("version", GitVersion).Msg("hiscore")
	}
	adjustDataPaths(cfg)
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("could not build leaderboards")
	}
}
