package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/studiowebux/cloudide/internal/config"
)

// ConfigVersion is written by ExportDefaults
const ConfigVersion = "1.0"

// Config is the user's keybinding file. Each section maps key -> action;
// the action "none" removes a default binding.
type Config struct {
	Version  string            `json:"version"`
	Global   map[string]string `json:"global,omitempty"`
	Explorer map[string]string `json:"explorer,omitempty"`
	Search   map[string]string `json:"search,omitempty"`
	Tabs     map[string]string `json:"tabs,omitempty"`
	Editor   map[string]string `json:"editor,omitempty"`
	Terminal map[string]string `json:"terminal,omitempty"`
	Help     map[string]string `json:"help,omitempty"`
}

// sections maps each context to its section of the config
func (c *Config) sections() map[Context]*map[string]string {
	return map[Context]*map[string]string{
		ContextGlobal:   &c.Global,
		ContextExplorer: &c.Explorer,
		ContextSearch:   &c.Search,
		ContextTabs:     &c.Tabs,
		ContextEditor:   &c.Editor,
		ContextTerminal: &c.Terminal,
		ContextHelp:     &c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), config.FilePermissions)
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings. The config is validated first
// and nothing is applied when it has errors.
func ApplyConfig(registry *Registry, cfg *Config) error {
	if result := NewValidator().ValidateConfig(cfg); result.HasErrors() {
		return fmt.Errorf("invalid keybinds config:\n%s", result.String())
	}

	for context, section := range cfg.sections() {
		for key, actionStr := range *section {
			action := Action(actionStr)
			if action == ActionNone {
				registry.Unregister(context, key)
				continue
			}
			registry.Register(context, key, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if configPath == "" {
		return registry, nil
	}

	cfg, err := LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
	}

	if err := ApplyConfig(registry, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", configPath, err)
	}

	return registry, nil
}

// ExportDefaults exports every default keybinding as a config file,
// so users can see what can be customized
func ExportDefaults() *Config {
	return ExportRegistry(NewDefaultRegistry())
}

// ExportRegistry converts a registry into its config form
func ExportRegistry(registry *Registry) *Config {
	cfg := &Config{Version: ConfigVersion}
	for context, section := range cfg.sections() {
		bindings := registry.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}
		*section = make(map[string]string, len(bindings))
		for _, b := range bindings {
			(*section)[b.Key] = string(b.Action)
		}
	}
	return cfg
}
