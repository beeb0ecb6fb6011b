package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvBaseDir, EnvPlaceholderDir, EnvRepos, EnvLogLevel, EnvGithubToken} {
		t.Setenv(key, "")
	}
}

func TestLoad_NotExists(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `develop_base_dir: /data/dev
development_repos:
  - laraPPr/lammps
  - example/other
github:
  api_url: https://ghe.example.com/api/v3
  web_url: https://ghe.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/dev", cfg.DevelopBaseDir)
	assert.Equal(t, []string{"laraPPr/lammps", "example/other"}, cfg.DevelopmentRepos)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.Github.APIURL)
	// Unset sections keep their defaults
	assert.Equal(t, "eb", cfg.Tools.EB)
	assert.Equal(t, "/data/dev/placeholder_ec", cfg.PlaceholderPath())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseDir, "/env/dev")
	t.Setenv(EnvRepos, "a/b, c/d ,")
	t.Setenv(EnvPlaceholderDir, "/env/placeholders")
	t.Setenv(EnvGithubToken, "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/env/dev", cfg.DevelopBaseDir)
	assert.Equal(t, []string{"a/b", "c/d"}, cfg.DevelopmentRepos)
	assert.Equal(t, "/env/placeholders", cfg.PlaceholderPath())
	assert.Equal(t, "secret", cfg.Github.Token)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	testCases := []struct {
		desc string
		data string
	}{
		{desc: "malformed yaml", data: "develop_base_dir: [unterminated"},
		{desc: "empty base dir", data: "develop_base_dir: \"\""},
		{desc: "empty tools", data: "tools:\n  eb: \"\""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0644))

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestConfig_IsDevelopmentRepo(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsDevelopmentRepo("laraPPr/lammps"))
	assert.False(t, cfg.IsDevelopmentRepo("lammps/lammps"))
}

func TestConfig_MarshalRedactsToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Github.Token = "secret"

	data, err := cfg.Marshal()
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "placeholder_dir: "+cfg.PlaceholderPath())
	assert.Equal(t, "secret", cfg.Github.Token)
}
