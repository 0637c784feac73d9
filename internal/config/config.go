package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethanuppal/kegtui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath      = "KEGTUI_CONFIG"
	envLogFile         = "KEGTUI_LOG_FILE"
	envTrace           = "KEGTUI_TRACE"
	envRefreshInterval = "KEGTUI_REFRESH_INTERVAL"
	envTickInterval    = "KEGTUI_TICK_INTERVAL"
)

// Load parses configuration from CLI arguments, environment variables, and
// the TOML config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("kegtui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, FilePath()), "path to the TOML config file")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	refresh := fs.Duration("refresh-interval", envOrDuration(env, envRefreshInterval, time.Second), "delay between background discovery scans")
	tick := fs.Duration("tick-interval", envOrDuration(env, envTickInterval, 20*time.Millisecond), "render loop tick period")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *refresh <= 0 {
		return Config{}, fmt.Errorf("refresh interval must be positive (got %s)", *refresh)
	}
	if *tick <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive (got %s)", *tick)
	}

	file, err := LoadFile(*configPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			KegSearchPaths:     file.KegSearchPaths,
			EngineSearchPaths:  file.EngineSearchPaths,
			WrapperSearchPaths: file.WrapperSearchPaths,
			DefaultKegDir:      DefaultKegDir,
			Editor:             file.Editor,
			Explorer:           file.Explorer,
			RefreshInterval:    *refresh,
			TickInterval:       *tick,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":          *configPath,
			"logFile":         *logFile,
			"trace":           strconv.FormatBool(*trace),
			"refreshInterval": refresh.String(),
			"tickInterval":    tick.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
