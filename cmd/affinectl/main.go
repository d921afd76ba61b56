// SPDX-License-Identifier: MIT

// Command affinectl evaluates a transform hierarchy and reports, per node,
// the world matrix, its TRS decomposition and the InverseTRS round-trip
// residual.
//
//	affinectl -scene rig.yaml [-config affinectl.yaml] [-eps 1e-5] [-format text|yaml] [-log info]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/yangfeng-xu/lab3-maths2/internal/config"
	"github.com/yangfeng-xu/lab3-maths2/internal/logging"
	"github.com/yangfeng-xu/lab3-maths2/internal/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("affinectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to affinectl.yaml")
	scenePath := fs.String("scene", "", "Path to the scene YAML")
	eps := fs.Float64("eps", 0, "Tolerance for affine checks (default: 1e-5)")
	format := fs.String("format", "", "Output format: text or yaml (default: text)")
	level := fs.String("log", "", "Log level: debug, info, warn, error (default: info)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:    *scenePath,
		Epsilon:  *eps,
		Format:   *format,
		LogLevel: *level,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	s, err := scene.LoadFile(cfg.Scene)
	if err != nil {
		log.Error("load scene", zap.String("path", cfg.Scene), zap.Error(err))
		return 1
	}
	log.Info("scene loaded",
		zap.String("path", cfg.Scene),
		zap.Int("nodes", len(s.Nodes)),
		zap.Float64("epsilon", cfg.Epsilon))

	results, err := s.Evaluate(log, cfg.AffineOptions()...)
	if err != nil {
		log.Error("evaluate scene", zap.Error(err))
		return 1
	}

	switch cfg.Format {
	case config.FormatYAML:
		err = writeYAML(stdout, results)
	default:
		err = writeText(stdout, results)
	}
	if err != nil {
		log.Error("write report", zap.Error(err))
		return 1
	}

	return 0
}
