// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/green/reqdesk/internal/requests"
	"github.com/green/reqdesk/internal/theme"
)

const (
	configFileName = "config.yaml"
	dirPerms       = 0700
	filePerms      = 0644
)

// PresetSlots are the number keys presets can be saved to
var PresetSlots = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// FilterPreset represents a saved filter configuration
type FilterPreset struct {
	Name      string `yaml:"name"`
	Query     string `yaml:"query,omitempty"`
	Status    []int  `yaml:"status,omitempty"`
	Requester *int   `yaml:"requester,omitempty"`
	Client    *int   `yaml:"client,omitempty"`
	PartnerNo []int  `yaml:"partner_no,omitempty"`
	Custom    *int   `yaml:"custom,omitempty"`
	Custom1   *int   `yaml:"custom1,omitempty"`
	Custom2   *int   `yaml:"custom2,omitempty"`
}

// PresetFromQuery captures the filter part of q
func PresetFromQuery(name string, q requests.Query) *FilterPreset {
	return &FilterPreset{
		Name:      name,
		Query:     q.Q,
		Status:    slices.Clone(q.Status),
		Requester: q.Requester,
		Client:    q.Client,
		PartnerNo: slices.Clone(q.PartnerNo),
		Custom:    q.Custom,
		Custom1:   q.Custom1,
		Custom2:   q.Custom2,
	}
}

// ApplyTo returns q with the preset's filters, back on page 1.
func (p *FilterPreset) ApplyTo(q requests.Query) requests.Query {
	out := q.Cleared()
	out.Q = p.Query
	if p.Status != nil {
		out.Status = slices.Clone(p.Status)
	}
	out.Requester = p.Requester
	out.Client = p.Client
	if p.PartnerNo != nil {
		out.PartnerNo = slices.Clone(p.PartnerNo)
	}
	out.Custom = p.Custom
	out.Custom1 = p.Custom1
	out.Custom2 = p.Custom2
	return out
}

// Config represents the application configuration
type Config struct {
	UI      UIConfig                 `yaml:"ui"`
	Log     LogConfig                `yaml:"log"`
	Presets map[string]*FilterPreset `yaml:"presets,omitempty"`
}

// UIConfig contains UI-related settings
type UIConfig struct {
	Theme       string `yaml:"theme"` // dark, light or auto
	PageSize    int    `yaml:"page_size"`
	Breakpoints struct {
		Small  int `yaml:"sm"`
		Medium int `yaml:"md"`
	} `yaml:"breakpoints"`
	PopupWidth  int `yaml:"popup_width"`
	PopupHeight int `yaml:"popup_height"`
	DrawerWidth int `yaml:"drawer_width"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	t := theme.Light()
	cfg := &Config{
		UI: UIConfig{
			Theme:       "auto",
			PageSize:    requests.PageSizeOptions[0],
			PopupWidth:  t.Variables.PopupWidth,
			PopupHeight: t.Variables.PopupHeight,
			DrawerWidth: t.Variables.DrawerWidth,
		},
		Log: LogConfig{Level: "info"},
	}
	cfg.UI.Breakpoints.Small = t.Breakpoints.Small
	cfg.UI.Breakpoints.Medium = t.Breakpoints.Medium
	return cfg
}

// Validate checks values a user may have mistyped
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("invalid theme %q: want dark, light or auto", c.UI.Theme)
	}
	if !slices.Contains(requests.PageSizeOptions, c.UI.PageSize) {
		return fmt.Errorf("invalid page size %d: want one of %v", c.UI.PageSize, requests.PageSizeOptions)
	}
	bp := c.UI.Breakpoints
	if bp.Small <= 0 || bp.Medium <= bp.Small {
		return fmt.Errorf("invalid breakpoints sm=%d md=%d: want 0 < sm < md", bp.Small, bp.Medium)
	}
	if c.UI.PopupWidth < 20 || c.UI.PopupHeight < 6 {
		return fmt.Errorf("popup size %dx%d too small", c.UI.PopupWidth, c.UI.PopupHeight)
	}
	for slot := range c.Presets {
		if !slices.Contains(PresetSlots, slot) {
			return fmt.Errorf("invalid preset slot %q", slot)
		}
	}
	return nil
}

// Tokens returns the theme tokens with the configured layout overrides.
// dark selects the dark palette when the theme is auto.
func (c *Config) Tokens(dark bool) theme.Tokens {
	name := c.UI.Theme
	if name == "auto" {
		name = "light"
		if dark {
			name = "dark"
		}
	}
	t := theme.ByName(name)
	t.Breakpoints = theme.Breakpoints{Small: c.UI.Breakpoints.Small, Medium: c.UI.Breakpoints.Medium}
	t.Variables.PopupWidth = c.UI.PopupWidth
	t.Variables.PopupHeight = c.UI.PopupHeight
	t.Variables.DrawerWidth = c.UI.DrawerWidth
	return t
}

// Manager handles configuration loading and saving
type Manager struct {
	configDir string
	config    *Config
}

// NewManager creates a new configuration manager
func NewManager(configDir string) *Manager {
	return &Manager{
		configDir: configDir,
		config:    DefaultConfig(),
	}
}

// DefaultConfigDir returns the default configuration directory
func DefaultConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "reqdesk"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "reqdesk"), nil
}

// Path returns the config file location
func (m *Manager) Path() string {
	return filepath.Join(m.configDir, configFileName)
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if os.IsNotExist(err) {
			// Use defaults if no config file exists
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", m.Path(), err)
	}
	m.config = cfg

	return nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	if err := os.MkdirAll(m.configDir, dirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.Path(), data, filePerms); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates the configuration
func (m *Manager) Set(cfg *Config) {
	m.config = cfg
}

// GetTheme returns the UI theme
func (m *Manager) GetTheme() string {
	return m.config.UI.Theme
}

// GetPageSize returns the UI page size
func (m *Manager) GetPageSize() int {
	return m.config.UI.PageSize
}

// GetPreset returns a filter preset by slot key (1-9, 0)
func (m *Manager) GetPreset(slot string) *FilterPreset {
	if m.config.Presets == nil {
		return nil
	}
	return m.config.Presets[slot]
}

// SetPreset saves a filter preset to a slot
func (m *Manager) SetPreset(slot string, preset *FilterPreset) error {
	if !slices.Contains(PresetSlots, slot) {
		return fmt.Errorf("invalid preset slot %q", slot)
	}
	if m.config.Presets == nil {
		m.config.Presets = make(map[string]*FilterPreset)
	}
	m.config.Presets[slot] = preset
	return nil
}

// GetPresets returns all presets
func (m *Manager) GetPresets() map[string]*FilterPreset {
	return m.config.Presets
}

// SlotForKey maps a digit key to its preset slot
func SlotForKey(key string) (string, bool) {
	if _, err := strconv.Atoi(key); err != nil || len(key) != 1 {
		return "", false
	}
	return key, true
}
