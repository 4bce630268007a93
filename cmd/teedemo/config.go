package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/vgcore/internal/fallback"
	"github.com/gogpu/vgcore/surface"
)

// Config is the demo configuration. It can be read from a TOML file;
// flags given on the command line override the file.
type Config struct {
	Master   string `toml:"master"`
	Slaves   string `toml:"slaves"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Output   string `toml:"output"`
	Replay   string `toml:"replay"`
	Font     string `toml:"font"`
	Fallback bool   `toml:"fallback"`
	Verbose  bool   `toml:"verbose"`
	Label    string `toml:"label"`
}

// DefaultConfig returns the configuration used without a file or flags.
func DefaultConfig() Config {
	return Config{
		Master: "image",
		Slaves: "recording",
		Width:  400,
		Height: 300,
		Output: "teedemo.png",
		Label:  "vgcore tee",
	}
}

// registerFlags binds the fields of c to flags on fs.
func (c *Config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Master, "master", c.Master, "backend of the tee master")
	fs.StringVar(&c.Slaves, "slaves", c.Slaves, "comma-separated backends of the tee slaves")
	fs.IntVar(&c.Width, "width", c.Width, "image width")
	fs.IntVar(&c.Height, "height", c.Height, "image height")
	fs.StringVar(&c.Output, "output", c.Output, "output file for the image target")
	fs.StringVar(&c.Replay, "replay", c.Replay, "output file for the replayed recording (optional)")
	fs.StringVar(&c.Font, "font", c.Font, "TrueType font file (default Go Regular)")
	fs.BoolVar(&c.Fallback, "fallback", c.Fallback, "add a fallback slave to the tee")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug output to stderr")
	fs.StringVar(&c.Label, "label", c.Label, "text drawn on the recording")
}

// Validate reports configuration values the demo cannot use.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file")
	}
	if c.Master == "" {
		return fmt.Errorf("no master backend")
	}
	for _, name := range append([]string{c.Master}, c.SlaveNames()...) {
		if _, ok := surface.Get(name); !ok {
			return fmt.Errorf("unknown backend %q (have %s)", name, strings.Join(surface.List(), ", "))
		}
	}
	return nil
}

// SlaveNames returns the slave backends in order, including the fallback
// backend when Fallback is set.
func (c *Config) SlaveNames() []string {
	var names []string
	for _, name := range strings.Split(c.Slaves, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if c.Fallback {
		names = append(names, string(fallback.Type))
	}
	return names
}

// parseConfig parses args. A -conf file is decoded first, then every flag
// set explicitly is applied on top of it.
func parseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("teedemo", flag.ContinueOnError)
	conf := fs.String("conf", "", "TOML config file (optional)")
	cfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *conf == "" {
		return cfg, cfg.Validate()
	}

	fromFile := DefaultConfig()
	if _, err := toml.DecodeFile(*conf, &fromFile); err != nil {
		return cfg, fmt.Errorf("failed to decode config file: %w", err)
	}
	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	fromFile.registerFlags(overrides)
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "conf" {
			_ = overrides.Set(f.Name, f.Value.String())
		}
	})
	return fromFile, fromFile.Validate()
}
