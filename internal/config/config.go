package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeTUI  = "tui"
	ModeHTTP = "http"

	ThemeLight = "light"
	ThemeDark  = "dark"

	appDir       = "tictactoe-hotseat"
	cfgFile      = appDir + "/config.yml"
	localCfgFile = "config.yml"
	logFile      = appDir + "/tictactoe.log"
)

var (
	ErrInvalidMode     = errors.New("unknown mode")
	ErrInvalidTheme    = errors.New("unknown theme")
	ErrInvalidMark     = errors.New("first mark must be X or O")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Mode      string `yaml:"mode" env:"MODE" env-default:"tui"`
	HTTP      HTTP   `yaml:"http"`
	FirstMark string `yaml:"first-mark" env:"FIRST_MARK" env-default:"X"`
	Theme     string `yaml:"theme" env:"THEME" env-default:"light"`
}

type HTTP struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
}

// MustLoad - load configuration from path, or from the default locations when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = Lookup()
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Lookup - returns ./config.yml if present, then the xdg config file, or "" if neither exists.
func Lookup() string {
	if _, err := os.Stat(localCfgFile); err == nil {
		return localCfgFile
	}

	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		return absPath
	}

	return ""
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeTUI, ModeHTTP:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, that.Mode)
	}

	switch that.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, that.Theme)
	}

	if that.FirstMark != "X" && that.FirstMark != "O" {
		return fmt.Errorf("%w: %q", ErrInvalidMark, that.FirstMark)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}

// LogPath - the configured log file, or the xdg state file in tui mode so logs stay off the screen.
func (that *Config) LogPath() (string, error) {
	if that.LogFile != "" || that.Mode != ModeTUI {
		return that.LogFile, nil
	}

	path, err := xdg.StateFile(logFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file: %w", err)
	}

	return path, nil
}

func (that *HTTP) GetAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
