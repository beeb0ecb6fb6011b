package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eessi/ebdev/internal/config"
)

// PlaceholderContent is a minimal placeholder easyconfig with every substitution token
const PlaceholderContent = `name = 'LAMMPS'
versionsuffix = _VERSIONSUFFIX
source_urls = [_SOURCE_URL]
sources = [_SOURCES]
general_packages = [_GENERAL_PACKAGES]
check_files = [_CHECK_FILES]
moduleclass = 'chem'
`

// NewTestConfig returns a default config rooted in a temporary develop base dir
// with an existing, empty placeholder directory
func NewTestConfig(t *testing.T, repos ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.DevelopBaseDir = t.TempDir()
	if len(repos) > 0 {
		cfg.DevelopmentRepos = repos
	}

	err := os.MkdirAll(cfg.PlaceholderPath(), 0755)
	require.NoError(t, err)

	return cfg
}

// WritePlaceholder creates a placeholder easyconfig called name in cfg's placeholder dir
func WritePlaceholder(t *testing.T, cfg *config.Config, name string) string {
	path := filepath.Join(cfg.PlaceholderPath(), name)
	err := os.WriteFile(path, []byte(PlaceholderContent), 0644)
	require.NoError(t, err)
	return path
}

// PullRequestJSON renders a pulls endpoint response body
func PullRequestJSON(head, sha, base string) string {
	return fmt.Sprintf(`{"head": {"ref": %q, "sha": %q}, "base": {"ref": %q}}`, head, sha, base)
}
