package storage

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/uiprefs/internal/constants"
)

func TestStorageManagerPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		methodCall   func(*Manager) (string, error)
		expectedPath func() string
		name         string
	}{
		{
			name: "GetStateDir returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetStateDir()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.StateHome, constants.AppName)
			},
		},
		{
			name: "GetLogPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetLogPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.StateHome, constants.AppName, constants.LogFilename)
			},
		},
		{
			name: "GetConfigPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetConfigPath(), nil
			},
			expectedPath: func() string {
				return filepath.Join(xdg.ConfigHome, constants.AppName, constants.ConfigFilename)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := New(afero.NewMemMapFs(), "")

			actualPath, err := tt.methodCall(manager)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath(), actualPath)
		})
	}
}

func TestHomeDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		home     string
		expected string
	}{
		{name: "default is XDG config home", home: "", expected: filepath.Join(xdg.ConfigHome, constants.AppName)},
		{name: "override wins", home: "/opt/app/home", expected: "/opt/app/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			manager := New(fs, tt.home)
			assert.Equal(t, tt.expected, manager.HomeDir())

			// resolving the home directory must not create it
			exists, err := afero.DirExists(fs, tt.expected)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestEnsureHomeDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := New(fs, "/home/user/.app")

	dir, err := manager.EnsureHomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/.app", dir)

	exists, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEnsureHomeDir_ReadOnly(t *testing.T) {
	t.Parallel()

	manager := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/home/user/.app")

	_, err := manager.EnsureHomeDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create home directory")
}

func TestStaticHome(t *testing.T) {
	t.Parallel()

	var resolver HomeResolver = StaticHome("/srv/ui")
	assert.Equal(t, "/srv/ui", resolver.HomeDir())
}
