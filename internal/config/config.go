package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/studiowebux/cloudide/internal/terminal"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix namespaces environment overrides (CLOUDIDE_LOG_LEVEL, ...)
	EnvPrefix = "CLOUDIDE"
)

var (
	// ConfigDir is the global configuration directory (~/.cloudide)
	ConfigDir string

	// ConfigFile is the YAML settings file
	ConfigFile string

	// KeybindsFile is the user keybinding override file
	KeybindsFile string

	// LogFile receives the TUI log, since the terminal itself is taken
	LogFile string
)

// Settings are the resolved startup options
type Settings struct {
	Catalog         string `mapstructure:"catalog"`   // Catalog file, empty for the built-in sample
	LogLevel        string `mapstructure:"log_level"` // logrus level name
	Keybinds        string `mapstructure:"keybinds"`  // Keybinding override file
	TerminalVisible bool   `mapstructure:"terminal_visible"`
	SidebarExpanded bool   `mapstructure:"sidebar_expanded"`
	TerminalBanner  string `mapstructure:"terminal_banner"`
	Prompt          string `mapstructure:"prompt"`
}

// Initialize sets up the configuration directory and path variables.
// It creates ~/.cloudide/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".cloudide"))
}

// InitializeAt is Initialize with an explicit configuration directory
func InitializeAt(dir string) error {
	ConfigDir = dir
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "cloudide.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}

// New returns a viper instance with defaults, env binding and the config
// file location set. cfgFile overrides ConfigFile when non-empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigFile(ConfigFile)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("keybinds", KeybindsFile)
	v.SetDefault("terminal_visible", true)
	v.SetDefault("sidebar_expanded", true)
	v.SetDefault("terminal_banner", terminal.DefaultBanner)
	v.SetDefault("prompt", terminal.DefaultPrompt)

	return v
}

// Load reads the config file (a missing file is fine) and resolves Settings
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if s.Catalog != "" {
		s.Catalog = ExpandHome(s.Catalog)
	}
	if s.Keybinds != "" {
		s.Keybinds = ExpandHome(s.Keybinds)
	}
	return &s, nil
}

// isNotFound reports whether err means there is simply no config file.
// viper only returns ConfigFileNotFoundError when searching config paths;
// with an explicit file it surfaces the os error instead.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

// ExpandHome expands a leading ~/ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
