// Package config loads the wordnet configuration file.
//
// The file is TOML. Every key is optional; missing keys keep their
// [Default] value:
//
//	[data]
//	synsets   = "/usr/share/wordnet/synsets.txt"
//	hypernyms = "/usr/share/wordnet/hypernyms.txt"
//
//	[engine]
//	cache_size = 4096
//
//	[outcast]
//	parallelism = 8
//
//	[server]
//	addr          = ":8080"
//	read_timeout  = "5s"
//	write_timeout = "30s"
//
// Command-line flags take precedence over the file; see [Config.Override].
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/wordnet/pkg/errors"
)

// AppName names the configuration directory.
const AppName = "wordnet"

// Config is the full configuration.
type Config struct {
	Data    Data    `toml:"data"`
	Engine  Engine  `toml:"engine"`
	Outcast Outcast `toml:"outcast"`
	Server  Server  `toml:"server"`
}

// Data locates the input files.
type Data struct {
	Synsets   string `toml:"synsets"`
	Hypernyms string `toml:"hypernyms"`
}

// Engine tunes the common-ancestor engine.
type Engine struct {
	// CacheSize is the number of per-vertex distance maps kept between
	// queries. Zero disables the cache.
	CacheSize int `toml:"cache_size"`
}

// Outcast tunes outcast detection.
type Outcast struct {
	// Parallelism bounds concurrent row sums. Zero means GOMAXPROCS.
	Parallelism int `toml:"parallelism"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wordnet/config.toml, falling back to
// ~/.config/wordnet/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the file at path on top of [Default]. When path is empty the
// [DefaultPath] is tried and a missing file there is not an error. An
// explicit path that does not exist returns FILE_NOT_FOUND.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
			}
			return cfg, nil
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML data into cfg. Keys absent from data leave cfg
// unchanged; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Engine.CacheSize < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "engine.cache_size must not be negative, got %d", c.Engine.CacheSize)
	case c.Outcast.Parallelism < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "outcast.parallelism must not be negative, got %d", c.Outcast.Parallelism)
	case c.Server.ReadTimeout.Duration < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "server.read_timeout must not be negative")
	case c.Server.WriteTimeout.Duration < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "server.write_timeout must not be negative")
	}
	return nil
}

// Overrides holds values given on the command line. Empty strings and nil
// pointers leave the file value untouched.
type Overrides struct {
	Synsets     string
	Hypernyms   string
	Addr        string
	CacheSize   *int
	Parallelism *int
}

// Override applies o on top of c and revalidates.
func (c *Config) Override(o Overrides) error {
	if o.Synsets != "" {
		c.Data.Synsets = o.Synsets
	}
	if o.Hypernyms != "" {
		c.Data.Hypernyms = o.Hypernyms
	}
	if o.Addr != "" {
		c.Server.Addr = o.Addr
	}
	if o.CacheSize != nil {
		c.Engine.CacheSize = *o.CacheSize
	}
	if o.Parallelism != nil {
		c.Outcast.Parallelism = *o.Parallelism
	}
	return c.Validate()
}

// RequireData reports NULL_INPUT unless both data files are configured.
func (c Config) RequireData() error {
	if c.Data.Synsets == "" {
		return errs.New(errs.ErrCodeNullInput, "no synsets file: set --synsets or data.synsets")
	}
	if c.Data.Hypernyms == "" {
		return errs.New(errs.ErrCodeNullInput, "no hypernyms file: set --hypernyms or data.hypernyms")
	}
	return nil
}
