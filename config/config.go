package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigWordListPath     = "word-list-path"
	ConfigLetterValuesPath = "letter-values-path"
	ConfigWordListEncoding = "word-list-encoding"
	ConfigLeaderboardLen   = "leaderboard-length"
	ConfigMinWordLength    = "min-word-length"
	ConfigRackSize         = "rack-size"
	ConfigRack             = "rack"
	ConfigRounds           = "rounds"
	ConfigParallelism      = "parallelism"
	ConfigOutput           = "output"
	ConfigDebug            = "debug"
	ConfigFile             = "config"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every key set to its default. It does
// not look at flags, the environment, or any config file.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	setDefaults(c.Viper)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigWordListPath, "./data/wordlist.txt")
	v.SetDefault(ConfigLetterValuesPath, "./data/letterValues.txt")
	v.SetDefault(ConfigWordListEncoding, "utf8")
	v.SetDefault(ConfigLeaderboardLen, 100)
	v.SetDefault(ConfigMinWordLength, 3)
	v.SetDefault(ConfigRackSize, 7)
	v.SetDefault(ConfigRack, "")
	v.SetDefault(ConfigRounds, 1)
	v.SetDefault(ConfigParallelism, 1)
	v.SetDefault(ConfigOutput, "text")
	v.SetDefault(ConfigDebug, false)
}

// Load reads configuration from, in increasing priority: defaults, an
// optional config file, HISCORE_* environment variables, and the given
// command-line args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("hiscore", pflag.ContinueOnError)
	fs.String(ConfigWordListPath, c.GetString(ConfigWordListPath), "file holding the word list, one word per line")
	fs.String(ConfigLetterValuesPath, c.GetString(ConfigLetterValuesPath), "file holding letter values, one letter:score per line")
	fs.String(ConfigWordListEncoding, c.GetString(ConfigWordListEncoding), "encoding of the word list file: utf8 or latin1")
	fs.Int(ConfigLeaderboardLen, c.GetInt(ConfigLeaderboardLen), "maximum number of entries on a leaderboard")
	fs.Int(ConfigMinWordLength, c.GetInt(ConfigMinWordLength), "minimum length of a word built from the rack")
	fs.Int(ConfigRackSize, c.GetInt(ConfigRackSize), "number of letters on a rack")
	fs.String(ConfigRack, c.GetString(ConfigRack), "use this rack instead of drawing a random one")
	fs.Int(ConfigRounds, c.GetInt(ConfigRounds), "number of racks to draw and rank")
	fs.Int(ConfigParallelism, c.GetInt(ConfigParallelism), "number of rounds computed at once")
	fs.String(ConfigOutput, c.GetString(ConfigOutput), "output format: text, json or yaml")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigFile, "", "optional config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("hiscore")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	if c.GetInt(ConfigLeaderboardLen) < 0 {
		return errors.New("leaderboard-length must not be negative")
	}
	if c.GetInt(ConfigRackSize) <= 0 {
		return errors.New("rack-size must be positive")
	}
	if c.GetInt(ConfigRounds) <= 0 {
		return errors.New("rounds must be positive")
	}
	if c.GetInt(ConfigParallelism) <= 0 {
		return errors.New("parallelism must be positive")
	}
	switch c.GetString(ConfigWordListEncoding) {
	case "utf8", "latin1":
	default:
		return errors.New("word-list-encoding must be utf8 or latin1")
	}
	return nil
}

// AdjustRelativePaths makes the data file paths absolute relative to
// basepath if they aren't already absolute.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigWordListPath, ConfigLetterValuesPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basepath, p))
	}
}

// SanitizedSettings returns all settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
