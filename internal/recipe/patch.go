package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/eessi/ebdev/internal/gh"
	"github.com/eessi/ebdev/internal/workspace"
)

// PatchPolicy only downloads the commit's patch. It is the fallback for
// repositories without easyconfig templates.
type PatchPolicy struct {
	Fetcher PatchFetcher
}

func (p *PatchPolicy) Generate(ctx context.Context, ws *workspace.Workspace, req Request) (*Outcome, error) {
	result, err := p.Fetcher.FetchPatch(ctx, req.Repo, req.Commit, ws.Path)
	if err != nil {
		return nil, err
	}

	path := gh.PatchPath(ws.Path, req.Commit)
	if !result.Success() {
		// Leave the workspace empty so a rerun retries the download
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove partial patch %s: %w", path, err)
		}
		return &Outcome{
			Status:  StatusPatchFailed,
			Message: fmt.Sprintf("Could not generate a patch from %s", p.Fetcher.PatchURL(req.Repo, req.Commit)),
		}, nil
	}

	return &Outcome{
		Status:  StatusPatchOnly,
		Message: fmt.Sprintf("A patch file was generated in %s", ws.Path),
		Path:    path,
	}, nil
}
