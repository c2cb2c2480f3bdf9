package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/contractkit/internal/logger"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".contractkit.yaml"

// Config is the tool configuration. Precedence: flags > environment > file > defaults.
type Config struct {
	SchemasDir      string        `yaml:"schemas_dir"`
	FixturesDir     string        `yaml:"fixtures_dir"`
	IDBase          string        `yaml:"id_base"`
	IdentityField   string        `yaml:"identity_field"`
	Dialect         string        `yaml:"dialect"`
	Lang            string        `yaml:"lang"`
	MetricsTextfile string        `yaml:"metrics_textfile"`
	Log             logger.Config `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SchemasDir:    "schemas",
		FixturesDir:   "fixtures",
		IDBase:        "https://forge-contracts.amerzel.dev/",
		IdentityField: "schema",
		Dialect:       "draft-07",
		Lang:          "en",
		Log:           logger.Config{Level: logger.Info, Encoding: "console"},
	}
}

// Load reads path (or DefaultFile when path is empty and the file exists) over
// the defaults and then applies CONTRACTKIT_* environment overrides.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.applyEnv(lookup)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for name, dst := range map[string]*string{
		"CONTRACTKIT_SCHEMAS_DIR":      &c.SchemasDir,
		"CONTRACTKIT_FIXTURES_DIR":     &c.FixturesDir,
		"CONTRACTKIT_ID_BASE":          &c.IDBase,
		"CONTRACTKIT_IDENTITY_FIELD":   &c.IdentityField,
		"CONTRACTKIT_DIALECT":          &c.Dialect,
		"CONTRACTKIT_LANG":             &c.Lang,
		"CONTRACTKIT_METRICS_TEXTFILE": &c.MetricsTextfile,
		"CONTRACTKIT_LOG_LEVEL":        &c.Log.Level,
		"CONTRACTKIT_LOG_ENCODING":     &c.Log.Encoding,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
}
