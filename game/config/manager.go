package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lgoncalvess/WordWar-Server/game/engine"
	"github.com/lgoncalvess/WordWar-Server/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigID names the built-in configuration.
const DefaultConfigID = "default"

// Manager handles game configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager. With an empty configDir
// only the built-in default configuration is available; otherwise the
// directory must exist and named configurations are loaded from its JSON
// files on demand.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
	}

	return &Manager{
		configDir:     configDir,
		defaultConfig: engine.DefaultConfig(),
		configs:       make(map[string]*engine.GameConfig),
	}, nil
}

// GetDefault returns the built-in default configuration.
func (m *Manager) GetDefault() *engine.GameConfig {
	return m.defaultConfig
}

// LoadConfig loads a configuration by name. The name "default" (or an empty
// name) resolves to the built-in configuration.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	if name == "" || name == DefaultConfigID {
		return m.defaultConfig, nil
	}

	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	if m.configDir == "" {
		return nil, fmt.Errorf("load config %s: %w", name, ErrConfigNotFound)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", name, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("load config %s: %w", name, err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("load config %s: %w: %v", name, ErrInvalidConfig, err)
	}
	if config.Alphabet == nil {
		config.Alphabet = engine.DefaultAlphabet()
	}
	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("load config %s: %w: %v", name, ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ListConfigs returns the built-in default plus every JSON configuration in
// the config directory.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := []*service.ConfigInfo{{
		ConfigID:    DefaultConfigID,
		Name:        m.defaultConfig.Name,
		Description: m.defaultConfig.Description,
		BoardSize:   m.defaultConfig.BoardSize,
		GameSeconds: m.defaultConfig.GameSeconds,
	}}

	if m.configDir == "" {
		return result, nil
	}

	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		configID := strings.TrimSuffix(entry.Name(), ".json")
		config, err := m.LoadConfig(configID)
		if err != nil {
			// Skip unreadable files; the validate command reports details.
			continue
		}
		result = append(result, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    configID,
			Name:        config.Name,
			Description: config.Description,
			BoardSize:   config.BoardSize,
			GameSeconds: config.GameSeconds,
		})
	}

	return result, nil
}

// SaveConfig validates and writes a configuration to the config directory.
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if m.configDir == "" {
		return fmt.Errorf("save config %s: no config directory configured", name)
	}
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("save config %s: %w", name, err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("save config %s: %w", name, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	if err := os.WriteFile(filepath.Join(m.configDir, filename), data, 0644); err != nil {
		return fmt.Errorf("save config %s: %w", name, err)
	}

	m.mu.Lock()
	m.configs[strings.TrimSuffix(filename, ".json")] = config
	m.mu.Unlock()

	return nil
}
