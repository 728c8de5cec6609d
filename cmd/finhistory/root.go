package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"finhistory/internal/catalog"
	"finhistory/internal/common/fsutil"
	"finhistory/internal/config"
	"finhistory/internal/module"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	variant      string
	resourcesDir string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "finhistory",
		Short:         "Finnish historical events for genealogy timelines",
		Long:          "finhistory serves a curated list of Finnish historical events (monarchs, regents,\npresidents, prime ministers, wars and treaties) as GEDCOM EVEN records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags with environment variable defaults
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", envStr("FINHISTORY_CONFIG", ""), "Config file (.yaml, .yml, .json or .toml)")
	pf.StringVar(&opts.variant, "variant", envStr("FINHISTORY_VARIANT", ""), "Event table: "+strings.Join(catalog.Names(), "|"))
	pf.StringVar(&opts.resourcesDir, "resources-dir", envStr("FINHISTORY_RESOURCES_DIR", ""), "Directory holding language/*.mo (defaults to the embedded resources)")
	pf.StringVar(&opts.logLevel, "log-level", envStr("FINHISTORY_LOG_LEVEL", ""), "Log level: debug|info|warn|error|off")
	pf.StringVar(&opts.logFormat, "log-format", envStr("FINHISTORY_LOG_FORMAT", ""), "Log format: console|json")

	root.AddCommand(
		newIdentityCmd(opts),
		newEventsCmd(opts),
		newTranslationsCmd(opts),
		newLocalesCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// resolveConfig merges the config file, then non-empty flags, then defaults.
func (o *rootOptions) resolveConfig() (config.Config, error) {
	var cfg config.Config
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if o.variant != "" { cfg.Variant = o.variant }
	if o.resourcesDir != "" { cfg.ResourcesDir = o.resourcesDir }
	if o.logLevel != "" { cfg.LogLevel = o.logLevel }
	if o.logFormat != "" { cfg.LogFormat = o.logFormat }
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to w so stdout stays
// reserved for command output.
func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	lvl := parseZerologLevel(cfg.LogLevel)
	var out io.Writer = w
	if strings.ToLower(cfg.LogFormat) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func parseZerologLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "off":
		return zerolog.Disabled
	case "warning":
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// openProvider builds the provider for cfg and runs both lifecycle hooks.
func openProvider(cfg config.Config, log zerolog.Logger) (*module.Provider, error) {
	v, err := catalog.Lookup(cfg.Variant)
	if err != nil {
		return nil, err
	}
	opts := module.Options{Variant: v, Logger: &log}
	if cfg.ResourcesDir != "" {
		fsys, abs, err := fsutil.OpenDir(cfg.ResourcesDir)
		if err != nil {
			return nil, err
		}
		opts.Resources = fsys
		opts.ResourcesFolder = abs
	}
	p := module.New(opts)
	if err := p.OnLoad(); err != nil {
		return nil, err
	}
	if err := p.OnStart(); err != nil {
		return nil, err
	}
	return p, nil
}

// setup is the common prologue of the subcommands.
func (o *rootOptions) setup(cmd *cobra.Command) (config.Config, zerolog.Logger, *module.Provider, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return cfg, zerolog.Nop(), nil, err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())
	p, err := openProvider(cfg, log)
	if err != nil {
		return cfg, log, nil, err
	}
	return cfg, log, p, nil
}

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitCSV splits a comma separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
