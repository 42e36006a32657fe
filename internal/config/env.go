// This file contains environment variable overrides for the configuration.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliased flags was set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an environment key (without EnvPrefix) to the flag names
// it shadows and the function applying its value. Unparseable values are
// ignored and the flag default is kept.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func int64Setter(dst func(*AppConfig) *int64) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolSetter(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"ITERATIONS", []string{"n", "iterations"}, int64Setter(func(c *AppConfig) *int64 { return &c.Iterations })},
	{"PARAM_A", []string{"a"}, int64Setter(func(c *AppConfig) *int64 { return &c.ParamA })},
	{"PARAM_B", []string{"b"}, int64Setter(func(c *AppConfig) *int64 { return &c.ParamB })},
	{"SCALE", []string{"scale"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Scale = parsed
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},

	{"STRICT", []string{"strict"}, boolSetter(func(c *AppConfig) *bool { return &c.Strict })},
	{"VERBOSE", []string{"v", "verbose"}, boolSetter(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DETAILS", []string{"d", "details"}, boolSetter(func(c *AppConfig) *bool { return &c.Details })},
	{"QUIET", []string{"q", "quiet"}, boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"TUI", []string{"tui"}, boolSetter(func(c *AppConfig) *bool { return &c.TUI })},
	{"DEBUG", []string{"debug"}, boolSetter(func(c *AppConfig) *bool { return &c.Debug })},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive) and returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies SERIESCALC_* values for flags not set on the
// command line. Priority: flags > environment > defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
