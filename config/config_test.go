package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{"PORT", "DATA_DIR", "ADMIN_KEY", "BASE_URL", "LOGO_FILE"}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, DefaultAdminKey, cfg.AdminKey)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Empty(t, cfg.LogoPath)
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY", "a-real-secret")
	t.Setenv("BASE_URL", "https://sheet.example.org/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "a-real-secret", cfg.AdminKey)
	assert.Equal(t, "https://sheet.example.org", cfg.BaseURL, "trailing slash stripped")
}

func TestLoadRejectsMissingLogo(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOGO_FILE", filepath.Join(t.TempDir(), "missing.jpg"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGO_FILE")
}

func TestLoadAcceptsExistingLogo(t *testing.T) {
	clearConfigEnv(t)
	logo := filepath.Join(t.TempDir(), "logo.jpg")
	require.NoError(t, os.WriteFile(logo, []byte("jpg"), 0o644))
	t.Setenv("LOGO_FILE", logo)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logo, cfg.LogoPath)
}
