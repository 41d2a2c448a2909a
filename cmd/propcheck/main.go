package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ctring/delta/internal/core/actions"
	"github.com/ctring/delta/internal/core/tableconfig"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return 2
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	registry := tableconfig.Default()
	logger.Debug("registry loaded", zap.Strings("properties", registry.Keys()))

	g := new(errgroup.Group)
	for _, path := range flag.Args() {
		path := path
		g.Go(func() error {
			return checkFile(logger, registry, path)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("validation failed", zap.Error(err))
		return 1
	}
	return 0
}

func checkFile(logger *zap.Logger, registry *tableconfig.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var properties map[string]string
	switch ext := filepath.Ext(path); ext {
	case ".json":
		properties, err = tableconfig.LoadJSON(f)
	case ".yaml", ".yml":
		properties, err = tableconfig.LoadYAML(f)
	default:
		return fmt.Errorf("%s: unsupported properties format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	validated, err := registry.ValidateProperties(properties)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	metadata := actions.NewMetadata("", nil, nil).WithMergedConfiguration(validated)
	logger.Info("properties valid",
		zap.String("file", path),
		zap.Int("properties", len(validated)),
		zap.Uint64("fingerprint", metadata.ConfigurationFingerprint()),
	)
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: propcheck [-v] <properties-file>...\n\n")
	fmt.Fprintf(os.Stderr, "Validates table property files (.yaml, .yml or .json) against the\nregistry of known table properties.\n\n")
	flag.PrintDefaults()
}
