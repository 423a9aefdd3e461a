package main

import (
	"context"
	"github.com/joho/godotenv"
	"github.com/myrjola/casefile/internal/casefile"
	"github.com/myrjola/casefile/internal/envstruct"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/logging"
	"github.com/myrjola/casefile/internal/pprofserver"
	"io/fs"
	"log/slog"
	"os"
)

type application struct {
	logger  *slog.Logger
	caseDir string
	loader  *casefile.Loader
}

type config struct {
	Addr      string `env:"CASEFILE_ADDR" envDefault:"localhost:4000"`
	CaseDir   string `env:"CASEFILE_CASE_DIR" envDefault:"./cases"`
	PprofPort string `env:"CASEFILE_PPROF_PORT" envDefault:":6060"`
}

func main() {
	ctx := context.Background()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		AddSource:   true,
		ReplaceAttr: nil,
	})))

	// The .env file is only used for local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server error", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	// pprof listens on loopback only so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	app := application{
		logger:  logger,
		caseDir: cfg.CaseDir,
		loader:  casefile.NewLoader(logger),
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "serving cases", slog.String("caseDir", cfg.CaseDir))

	return app.configureAndStartServer(ctx, cfg.Addr)
}
