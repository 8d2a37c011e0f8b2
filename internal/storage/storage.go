// Package storage provides XDG-compliant path management for uiprefs.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/uiprefs/internal/constants"
)

// HomeResolver supplies the base directory for persisted UI state.
type HomeResolver interface {
	HomeDir() string
}

// StaticHome is a HomeResolver returning a fixed directory.
type StaticHome string

// HomeDir returns the directory unchanged.
func (h StaticHome) HomeDir() string {
	return string(h)
}

// Manager resolves application directories with filesystem abstraction
type Manager struct {
	fs   afero.Fs
	home string
}

// New creates a new storage manager. An empty home selects the XDG config directory.
func New(fs afero.Fs, home string) *Manager {
	return &Manager{fs: fs, home: home}
}

// HomeDir returns the application home directory without touching the filesystem.
func (m *Manager) HomeDir() string {
	if m.home != "" {
		return m.home
	}
	return DefaultHomeDir()
}

// EnsureHomeDir returns the home directory, creating it if necessary
func (m *Manager) EnsureHomeDir() (string, error) {
	dir := m.HomeDir()
	if err := m.fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create home directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetStateDir returns the XDG state directory for uiprefs, creating it if necessary
func (m *Manager) GetStateDir() (string, error) {
	stateDir := filepath.Join(xdg.StateHome, constants.AppName)
	if err := m.fs.MkdirAll(stateDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", stateDir, err)
	}
	return stateDir, nil
}

// GetLogPath returns the full path to the uiprefs log file
func (m *Manager) GetLogPath() (string, error) {
	stateDir, err := m.GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, constants.LogFilename), nil
}

// GetConfigPath returns the default path of the CLI config file.
func (m *Manager) GetConfigPath() string {
	return filepath.Join(DefaultHomeDir(), constants.ConfigFilename)
}

// DefaultHomeDir is $XDG_CONFIG_HOME/uiprefs.
func DefaultHomeDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}
