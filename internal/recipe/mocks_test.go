package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/mock"

	"github.com/eessi/ebdev/internal/runner"
)

type mockFetcher struct {
	mock.Mock
}

// FetchPatch implements PatchFetcher.
func (m *mockFetcher) FetchPatch(ctx context.Context, repo, commit, dir string) (*runner.Result, error) {
	args := m.Called(ctx, repo, commit, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runner.Result), args.Error(1)
}

// PatchURL implements PatchFetcher.
func (m *mockFetcher) PatchURL(repo, commit string) string {
	return fmt.Sprintf("https://github.com/%s/commit/%s.patch", repo, commit)
}

// ArchiveURL implements PatchFetcher.
func (m *mockFetcher) ArchiveURL(repo string) string {
	return fmt.Sprintf("https://github.com/%s/archive/", repo)
}

// expectPatch makes FetchPatch write a patch file and succeed
func (m *mockFetcher) expectPatch(repo, commit string) *mock.Call {
	return m.On("FetchPatch", mock.Anything, repo, commit, mock.Anything).
		Run(func(args mock.Arguments) {
			dir := args.String(3)
			_ = os.WriteFile(filepath.Join(dir, commit+".patch"), []byte("diff --git a/x b/x\n"), 0644)
		}).
		Return(&runner.Result{}, nil)
}

type mockTool struct {
	mock.Mock
}

// CopyEasyconfig implements EasyconfigTool.
func (m *mockTool) CopyEasyconfig(ctx context.Context, name, dir string) (*runner.Result, error) {
	args := m.Called(ctx, name, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runner.Result), args.Error(1)
}

// InjectChecksums implements EasyconfigTool.
func (m *mockTool) InjectChecksums(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
