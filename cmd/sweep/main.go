// Command sweep builds the surfaces described by a scene file and writes
// each one as a Wavefront OBJ file.
//
// Usage:
//
//	sweep -scene scene.yaml [-out dir] [-debug]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alexozer/sweep/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	scenePath := fs.String("scene", "", "Path to scene file")
	outDir := fs.String("out", ".", "Directory the OBJ files are written to")
	debug := fs.Bool("debug", false, "Log the parameters of every evaluation")
	fs.Parse(os.Args[1:])

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: sweep -scene scene.yaml [-out dir] [-debug]")
		fs.PrintDefaults()
		os.Exit(2)
	}

	scene, err := config.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(*debug)
	defer logger.Sync()

	if _, err := run(scene, *outDir, logger); err != nil {
		logger.Error("failed to build scene", zap.String("scene", *scenePath), zap.Error(err))
		os.Exit(1)
	}
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return logger
}
