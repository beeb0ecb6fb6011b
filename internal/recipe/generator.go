package recipe

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eessi/ebdev/internal/runner"
	"github.com/eessi/ebdev/internal/workspace"
)

// Status classifies the outcome of a generation attempt
type Status string

const (
	StatusAlreadyGenerated Status = "already-generated"
	StatusGenerated        Status = "generated"
	StatusCopied           Status = "copied"
	StatusUnknownTemplate  Status = "unknown-template"
	StatusPatchOnly        Status = "patch-only"
	StatusPatchFailed      Status = "patch-failed"
)

// Produced reports whether the status left a new artifact in the workspace
func (s Status) Produced() bool {
	switch s {
	case StatusGenerated, StatusCopied, StatusPatchOnly:
		return true
	default:
		return false
	}
}

// Outcome is the single status report of one Generate call
type Outcome struct {
	Status  Status
	Message string
	Path    string // artifact written, if any
}

func (o *Outcome) String() string {
	return o.Message
}

// Request carries everything a policy needs to know about the build
type Request struct {
	Repo       string // owner/name
	Commit     string
	BaseBranch string
	Toolchain  string // e.g. foss-2023a; only needed by recipe policies

	// InjectChecksums runs eb --inject-checksums on a written easyconfig
	InjectChecksums bool
}

// Policy produces the development artifacts for one repository
type Policy interface {
	Generate(ctx context.Context, ws *workspace.Workspace, req Request) (*Outcome, error)
}

// ToolchainLister is implemented by policies that need a toolchain and can
// list the ones they have templates for
type ToolchainLister interface {
	Toolchains(baseBranch string) ([]string, error)
	EasyconfigName(baseBranch, toolchain string) Name
}

// PatchFetcher downloads commit patches
type PatchFetcher interface {
	FetchPatch(ctx context.Context, repo, commit, dir string) (*runner.Result, error)
	PatchURL(repo, commit string) string
	ArchiveURL(repo string) string
}

// EasyconfigTool wraps the EasyBuild operations policies rely on
type EasyconfigTool interface {
	CopyEasyconfig(ctx context.Context, name, dir string) (*runner.Result, error)
	InjectChecksums(ctx context.Context, path string) error
}

// Generator picks the policy registered for a repository and runs it once per workspace
type Generator struct {
	policies map[string]Policy
	fallback Policy
	logger   *zap.Logger
}

// NewGenerator creates a generator that uses fallback for unregistered repositories
func NewGenerator(fallback Policy, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		policies: make(map[string]Policy),
		fallback: fallback,
		logger:   logger,
	}
}

// Register assigns policy to repo, replacing any previous registration
func (g *Generator) Register(repo string, policy Policy) {
	g.policies[repo] = policy
}

// PolicyFor returns the policy for repo, or the fallback
func (g *Generator) PolicyFor(repo string) Policy {
	if p, ok := g.policies[repo]; ok {
		return p
	}
	return g.fallback
}

// Generate produces the development artifacts for req in ws.
// A workspace that already has content is left untouched.
func (g *Generator) Generate(ctx context.Context, ws *workspace.Workspace, req Request) (*Outcome, error) {
	log := g.logger.With(
		zap.String("repo", req.Repo),
		zap.String("commit", req.Commit),
		zap.String("workspace", ws.Path),
	)

	empty, err := ws.IsEmpty()
	if err != nil {
		return nil, err
	}
	if !empty {
		log.Info("Workspace already populated, skipping generation")
		return &Outcome{
			Status:  StatusAlreadyGenerated,
			Message: "easyconfig is already generated",
			Path:    ws.Path,
		}, nil
	}

	policy := g.PolicyFor(req.Repo)
	log.Debug("Selected policy", zap.String("policy", fmt.Sprintf("%T", policy)))

	outcome, err := policy.Generate(ctx, ws, req)
	if err != nil {
		return nil, err
	}
	log.Info("Generation finished",
		zap.String("status", string(outcome.Status)),
		zap.String("path", outcome.Path),
	)
	return outcome, nil
}
