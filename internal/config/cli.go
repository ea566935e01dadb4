package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Store          string
	NoColor        bool
	AssumeYes      bool
	TwentyFourHour bool
	// TwentyFourHourSet distinguishes an explicit --24hr=false from the
	// flag being absent
	TwentyFourHourSet bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Store:             ctx.String("store"),
			NoColor:           ctx.Bool("no-color"),
			AssumeYes:         ctx.Bool("yes"),
			TwentyFourHour:    ctx.Bool("24hr"),
			TwentyFourHourSet: ctx.IsSet("24hr"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Store != "" {
		c.Store.Backend = strings.ToLower(strings.TrimSpace(opts.Store))
	}

	c.CLI.NoColor = opts.NoColor
	c.CLI.AssumeYes = opts.AssumeYes

	if opts.TwentyFourHourSet {
		c.Display.TwentyFourHour = opts.TwentyFourHour
	}
}
