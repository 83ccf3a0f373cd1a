// Package main provides the diffprep command-line interface.
// It prepares files for a side-by-side diff viewer: content decoding,
// directory listings, path validation and saving edited text.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Cyclone1070/diffprep/internal/config"
	"github.com/Cyclone1070/diffprep/internal/logging"
	"github.com/Cyclone1070/diffprep/internal/platform"
	"github.com/Cyclone1070/diffprep/internal/tool/directory"
	"github.com/Cyclone1070/diffprep/internal/tool/file"
	"github.com/Cyclone1070/diffprep/internal/tool/fsutil"
	"github.com/Cyclone1070/diffprep/internal/tool/spreadsheet"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Platform platform.Platform
	FS       *fsutil.OSFileSystem

	Classifier *file.Classifier
	Resolver   *file.Resolver
	Saver      *file.Saver
	Lister     *directory.Lister

	Stdin  io.Reader
	Stdout io.Writer
}

// createDependencies wires the concrete components on top of fs.
func createDependencies(
	cfg *config.Config,
	logger *zap.Logger,
	plat platform.Platform,
	fs *fsutil.OSFileSystem,
) *Dependencies {
	classifier := file.NewClassifier(fs, cfg.Compare.SpreadsheetExtension)
	binaryOnly := directory.NewExtensionPredicate(cfg.Compare.BinaryOnlyExtensions)

	return &Dependencies{
		Config:     cfg,
		Logger:     logger,
		Platform:   plat,
		FS:         fs,
		Classifier: classifier,
		Resolver:   file.NewResolver(fs, classifier, spreadsheet.NewDiffer(), logger),
		Saver:      file.NewSaver(fs, logger),
		Lister:     directory.NewLister(fs, plat, binaryOnly, logger),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
	}
}

func main() {
	// Load configuration (from defaults + ~/.config/diffprep/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	plat, err := platform.Current()
	if err != nil {
		logger.Error("Failed to detect platform", zap.Error(err))
		os.Exit(1)
	}

	deps := createDependencies(cfg, logger, plat, fsutil.NewOSFileSystem())

	if err := newRootCmd(deps).Execute(); err != nil {
		logger.Debug("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
