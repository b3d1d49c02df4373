// Package config loads savedata CLI settings from flags, environment, and an
// optional YAML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output destinations.
const (
	OutputFile = "file"
	OutputLog  = "log"
)

// Config holds the CLI settings.
type Config struct {
	Format    string `mapstructure:"format"`
	Name      string `mapstructure:"name"`
	Filename  string `mapstructure:"filename"`
	Delimiter string `mapstructure:"delimiter"`
	OutDir    string `mapstructure:"out_dir"`
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log_level"`
	Describe  bool   `mapstructure:"describe"`
	Border    string `mapstructure:"border"`
}

// Flags registers the CLI flags on fs.
func Flags(fs *pflag.FlagSet) {
	fs.StringP("format", "f", "csv", `output format keyword or object, e.g. "r" or '{"format":"delimited","delimiter":";"}'`)
	fs.StringP("name", "n", "", "identifier bound in JS, Python, and R output")
	fs.StringP("filename", "o", "", "output file name; the extension is replaced by the format's")
	fs.StringP("delimiter", "d", "", "field delimiter for delimited output")
	fs.String("out-dir", ".", "directory for file output")
	fs.String("output", OutputFile, "destination: file or log")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Bool("describe", false, "print the inferred structure instead of exporting")
	fs.String("border", "rounded", "border style for --describe: rounded, none, ascii, heavy, double")
	fs.String("config", "", "path to a YAML config file")
}

// Load resolves settings from fs, SAVEDATA_* environment variables, and the
// config file named by --config, in that order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("savedata")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"format", "name", "filename", "delimiter", "out-dir", "output", "log-level", "describe", "border"} {
		if err := v.BindPFlag(strings.ReplaceAll(key, "-", "_"), fs.Lookup(key)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Output != OutputFile && cfg.Output != OutputLog {
		return nil, fmt.Errorf("invalid output %q: want %s or %s", cfg.Output, OutputFile, OutputLog)
	}
	return &cfg, nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
