package app

import (
	"github.com/bamorim/bindpls/internal/config"
	"github.com/bamorim/bindpls/internal/logger"
	"github.com/bamorim/bindpls/internal/probe"
)

type Options struct {
	ConfigPath string
	Verbose    bool
	Prober     probe.Prober // optional, defaults to probe.NetProber
}

type context struct {
	config config.Config
	logger logger.Logger
	prober probe.Prober
}

func withContext(opts Options, fn func(*context) error) error {
	resolved := resolveOptions(opts)
	cfg, err := config.Load(resolved.ConfigPath)
	if err != nil {
		return err
	}
	log := logger.Logger{Path: cfg.LogFile, Verbose: resolved.Verbose}
	prober := opts.Prober
	if prober == nil {
		prober = probe.NetProber{}
	}
	return fn(&context{config: cfg, logger: log, prober: prober})
}

func resolveOptions(opts Options) Options {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigPath()
	}
	opts.ConfigPath = config.ExpandPath(opts.ConfigPath)
	return opts
}
