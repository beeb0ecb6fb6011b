package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "ebdev"

// Environment variables that override values from the config file
const (
	EnvBaseDir        = "EBDEV_DEVELOP_BASE_DIR"
	EnvPlaceholderDir = "EBDEV_PLACEHOLDER_DIR"
	EnvRepos          = "EBDEV_DEVELOPMENT_REPOS"
	EnvLogLevel       = "EBDEV_LOG_LEVEL"
	EnvGithubToken    = "GITHUB_TOKEN"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the static configuration for development builds
type Config struct {
	// DevelopBaseDir is the root under which per-PR workspaces are created
	DevelopBaseDir string `yaml:"develop_base_dir"`

	// PlaceholderDir holds placeholder easyconfigs; defaults to <develop_base_dir>/placeholder_ec
	PlaceholderDir string `yaml:"placeholder_dir,omitempty"`

	// DevelopmentRepos lists the repositories (owner/name) enabled for development builds
	DevelopmentRepos []string `yaml:"development_repos"`

	Github GithubConfig `yaml:"github"`
	Tools  ToolsConfig  `yaml:"tools"`
	Log    LogConfig    `yaml:"log"`
}

// GithubConfig configures access to the hosting service
type GithubConfig struct {
	APIURL string `yaml:"api_url"`
	WebURL string `yaml:"web_url"`
	Token  string `yaml:"token,omitempty"`
}

// ToolsConfig names the external executables
type ToolsConfig struct {
	Curl string `yaml:"curl"`
	EB   string `yaml:"eb"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		DevelopBaseDir:   "/scratch/gent/461/vsc46128/EESSI/dev",
		DevelopmentRepos: []string{"laraPPr/lammps"},
		Github: GithubConfig{
			APIURL: "https://api.github.com",
			WebURL: "https://github.com",
		},
		Tools: ToolsConfig{
			Curl: "curl",
			EB:   "eb",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under the XDG config home
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the config file at path, falling back to defaults if it doesn't exist.
// Environment overrides are applied after the file is parsed.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvBaseDir); v != "" {
		c.DevelopBaseDir = v
	}
	if v := os.Getenv(EnvPlaceholderDir); v != "" {
		c.PlaceholderDir = v
	}
	if v := os.Getenv(EnvRepos); v != "" {
		var repos []string
		for _, repo := range strings.Split(v, ",") {
			if repo = strings.TrimSpace(repo); repo != "" {
				repos = append(repos, repo)
			}
		}
		c.DevelopmentRepos = repos
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvGithubToken); v != "" && c.Github.Token == "" {
		c.Github.Token = v
	}
}

// Validate checks that required fields are set
func (c *Config) Validate() error {
	if c.DevelopBaseDir == "" {
		return fmt.Errorf("%w: develop_base_dir is required", ErrInvalidConfig)
	}
	if c.Github.APIURL == "" || c.Github.WebURL == "" {
		return fmt.Errorf("%w: github.api_url and github.web_url are required", ErrInvalidConfig)
	}
	if c.Tools.Curl == "" || c.Tools.EB == "" {
		return fmt.Errorf("%w: tools.curl and tools.eb are required", ErrInvalidConfig)
	}
	return nil
}

// PlaceholderPath returns the directory holding placeholder easyconfigs
func (c *Config) PlaceholderPath() string {
	if c.PlaceholderDir != "" {
		return c.PlaceholderDir
	}
	return filepath.Join(c.DevelopBaseDir, "placeholder_ec")
}

// IsDevelopmentRepo reports whether repo is enabled for development builds
func (c *Config) IsDevelopmentRepo(repo string) bool {
	return slices.Contains(c.DevelopmentRepos, repo)
}

// Marshal renders the config as YAML with the token redacted
func (c *Config) Marshal() ([]byte, error) {
	redacted := *c
	if redacted.Github.Token != "" {
		redacted.Github.Token = "<redacted>"
	}
	if redacted.PlaceholderDir == "" {
		redacted.PlaceholderDir = c.PlaceholderPath()
	}
	data, err := yaml.Marshal(&redacted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
