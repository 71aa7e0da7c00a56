// Package commands implements CLI commands.
package commands

import (
	"github.com/spf13/pflag"
	"github.com/yggai/ygggo_building"
	"go.uber.org/zap"
)

// Options are the flags shared by every command.
type Options struct {
	EnvFiles []string
	Strict   bool
	Verbose  bool

	Config ygggo_building.Config
	logger *zap.Logger
}

// Bind registers the shared flags.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.EnvFiles, "env-file", nil, "dotenv files to load before reading YGGGO_BUILDING_* variables")
	fs.BoolVar(&o.Strict, "strict", false, "report database errors instead of logging them")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log statements and connection events")
}

// Load reads the configuration from the environment.
func (o *Options) Load() error {
	cfg, err := ygggo_building.ConfigFromEnv(o.EnvFiles...)
	if err != nil {
		return err
	}
	if o.Strict {
		cfg.Strict = true
	}
	o.Config = cfg

	zcfg := zap.NewProductionConfig()
	if o.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if o.logger, err = zcfg.Build(); err != nil {
		o.logger = zap.NewNop()
	}
	return nil
}

func (o *Options) storeOptions() []ygggo_building.Option {
	return []ygggo_building.Option{ygggo_building.WithZapLogger(o.logger)}
}
