package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/eessi/ebdev/internal/model"
)

const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// ErrInvalidCommit is returned for an empty or path-like commit
var ErrInvalidCommit = errors.New("invalid commit")

// Workspace is the directory that holds the artifacts of one (PR, commit) build attempt.
//
//	<root>/<repo>/pr_<number>_cm_<commit>/
type Workspace struct {
	Root     string
	Repo     string
	Number   int
	Commit   string
	RecipeID string
	Path     string
}

// RecipeID returns the identifier used as the workspace directory name
func RecipeID(number int, commit string) string {
	return fmt.Sprintf("pr_%d_cm_%s", number, commit)
}

// Allocate creates the workspace directory for a PR commit, including missing parents.
// Allocating an existing workspace is not an error.
func Allocate(root, repo string, number int, commit string) (*Workspace, error) {
	if err := model.ValidateRepo(repo); err != nil {
		return nil, err
	}
	if err := model.ValidatePRNumber(number); err != nil {
		return nil, err
	}
	if commit == "" || strings.ContainsAny(commit, `/\`) || strings.Contains(commit, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommit, commit)
	}

	id := RecipeID(number, commit)
	ws := &Workspace{
		Root:     root,
		Repo:     repo,
		Number:   number,
		Commit:   commit,
		RecipeID: id,
		Path:     filepath.Join(root, repo, id),
	}

	if err := os.MkdirAll(ws.Path, DirMode); err != nil {
		return nil, fmt.Errorf("failed to create workspace %s: %w", ws.Path, err)
	}
	return ws, nil
}

// IsEmpty reports whether the workspace directory has no entries
func (w *Workspace) IsEmpty() (bool, error) {
	entries, err := os.ReadDir(w.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read workspace %s: %w", w.Path, err)
	}
	return len(entries) == 0, nil
}

// File returns the path of name inside the workspace
func (w *Workspace) File(name string) string {
	return filepath.Join(w.Path, name)
}

// Files returns the names of the regular files in the workspace, sorted
func (w *Workspace) Files() ([]string, error) {
	entries, err := os.ReadDir(w.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %s: %w", w.Path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// List returns the existing workspaces under root, optionally limited to one repository.
// Directories that don't follow the pr_<number>_cm_<commit> layout are skipped.
func List(root, repo string) ([]*Workspace, error) {
	pattern := filepath.Join(root, "*", "*", "pr_*_cm_*")
	if repo != "" {
		if err := model.ValidateRepo(repo); err != nil {
			return nil, err
		}
		pattern = filepath.Join(root, repo, "pr_*_cm_*")
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	var workspaces []*Workspace
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.IsDir() {
			continue
		}

		rel, err := filepath.Rel(root, match)
		if err != nil {
			continue
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) != 3 {
			continue
		}

		number, commit, ok := ParseRecipeID(parts[2])
		if !ok {
			continue
		}
		workspaces = append(workspaces, &Workspace{
			Root:     root,
			Repo:     parts[0] + "/" + parts[1],
			Number:   number,
			Commit:   commit,
			RecipeID: parts[2],
			Path:     match,
		})
	}

	sort.Slice(workspaces, func(i, j int) bool {
		if workspaces[i].Repo != workspaces[j].Repo {
			return workspaces[i].Repo < workspaces[j].Repo
		}
		if workspaces[i].Number != workspaces[j].Number {
			return workspaces[i].Number < workspaces[j].Number
		}
		return workspaces[i].Commit < workspaces[j].Commit
	})
	return workspaces, nil
}

// ParseRecipeID splits pr_<number>_cm_<commit> into its parts
func ParseRecipeID(id string) (int, string, bool) {
	rest, ok := strings.CutPrefix(id, "pr_")
	if !ok {
		return 0, "", false
	}
	numStr, commit, ok := strings.Cut(rest, "_cm_")
	if !ok || commit == "" {
		return 0, "", false
	}
	number, err := strconv.Atoi(numStr)
	if err != nil || number <= 0 {
		return 0, "", false
	}
	return number, commit, true
}
