package main

import (
	"github.com/rs/zerolog"

	"github.com/lox/handscore/cmd/handscore/shared"
	"github.com/lox/handscore/internal/config"
)

// CommonFlags are shared by every command that does work
type CommonFlags struct {
	Config   string `short:"c" default:"handscore.hcl" help:"HCL config file (ignored if missing)"`
	Debug    bool   `help:"Enable debug logging"`
	JSONLogs bool   `name:"json-logs" help:"Log as JSON instead of console text"`
}

func (f CommonFlags) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := shared.ParseLevel(cfg.LogLevel, f.Debug)
	if f.JSONLogs {
		return cfg, shared.SetupStructuredLogger(level), nil
	}
	return cfg, shared.SetupLogger(level), nil
}
