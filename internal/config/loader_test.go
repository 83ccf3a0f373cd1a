package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
// NOTE: This is a minimal mock for config loading tests.
// For comprehensive filesystem mocking, see internal/testing/mocks.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const testConfigPath = "/home/user/.config/diffprep/config.json"

func loaderWithFile(content string) *Loader {
	return NewLoaderWithFS(&MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{testConfigPath: []byte(content)},
	})
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "xlsx", cfg.Compare.SpreadsheetExtension)
	assert.Contains(t, cfg.Compare.BinaryOnlyExtensions, "zip")
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"compare": {"binary_only_extensions": ["iso"], "spreadsheet_extension": "xlsm"},
		"log": {"level": "debug", "verbose": true}
	}`

	cfg, err := loaderWithFile(configJSON).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"iso"}, cfg.Compare.BinaryOnlyExtensions)
	assert.Equal(t, "xlsm", cfg.Compare.SpreadsheetExtension)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	cfg, err := loaderWithFile(`{"log": {"verbose": true}}`).Load()

	require.NoError(t, err)
	assert.True(t, cfg.Log.Verbose)                             // Overridden
	assert.Equal(t, "info", cfg.Log.Level)                      // Default
	assert.Equal(t, "xlsx", cfg.Compare.SpreadsheetExtension)   // Default
	assert.Contains(t, cfg.Compare.BinaryOnlyExtensions, "png") // Default list
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	cfg, err := loaderWithFile(`{}`).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	cfg, err := loaderWithFile(`{invalid json`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, loader.Path())
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	cfg, err := loaderWithFile(`["not", "an", "object"]`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey_ReturnsError(t *testing.T) {
	cfg, err := loaderWithFile(`{"compare": {"spreadsheet_extention": "ods"}}`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "spreadsheet_extention")
}

func TestLoad_WrongValueType_ReturnsError(t *testing.T) {
	cfg, err := loaderWithFile(`{"log": {"verbose": "yes please"}}`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValue_FailsValidation(t *testing.T) {
	cfg, err := loaderWithFile(`{"log": {"level": "loud"}}`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "log.level")
}

// --- EDGE CASE TESTS ---

func TestLoad_ShorterList_ReplacesDefaultEntirely(t *testing.T) {
	cfg, err := loaderWithFile(`{"compare": {"binary_only_extensions": ["bin"]}}`).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"bin"}, cfg.Compare.BinaryOnlyExtensions)
}

func TestLoad_EmptyList_ReplacesDefault(t *testing.T) {
	cfg, err := loaderWithFile(`{"compare": {"binary_only_extensions": []}}`).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Compare.BinaryOnlyExtensions)
}

func TestLoad_ExplicitFalse_Overrides(t *testing.T) {
	cfg, err := loaderWithFile(`{"log": {"verbose": false}}`).Load()

	require.NoError(t, err)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad_DefaultsAreNotShared(t *testing.T) {
	first, err := loaderWithFile(`{"compare": {"binary_only_extensions": ["bin"]}}`).Load()
	require.NoError(t, err)

	second := DefaultConfig()

	assert.NotEqual(t, first.Compare.BinaryOnlyExtensions, second.Compare.BinaryOnlyExtensions)
	assert.Contains(t, second.Compare.BinaryOnlyExtensions, "zip")
}
