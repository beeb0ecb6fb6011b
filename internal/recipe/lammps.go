package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/eessi/ebdev/internal/gh"
	"github.com/eessi/ebdev/internal/runner"
	"github.com/eessi/ebdev/internal/workspace"
)

// LAMMPSRepo is the repository whose PRs get LAMMPS easyconfigs
const LAMMPSRepo = "laraPPr/lammps"

const (
	lammpsComponent = "LAMMPS"
	lammpsSuffix    = "kokkos"
	lammpsDevSuffix = "dev_OBMD"

	generalPackagesAnchor = "general_packages = ["
	patchesAnchor         = "patches = ["
	obmdPackageLine       = "    'OBMD',"
)

// Placeholder tokens and the values they are replaced with.
// The package and check file lists are fixed for OBMD development builds.
const (
	tokenVersionSuffix   = "_VERSIONSUFFIX"
	tokenSourceURL       = "_SOURCE_URL"
	tokenSources         = "_SOURCES"
	tokenGeneralPackages = "_GENERAL_PACKAGES"
	tokenCheckFiles      = "_CHECK_FILES"

	versionSuffixValue   = `"-` + lammpsSuffix + `-` + lammpsDevSuffix + `"`
	generalPackagesValue = "\n" +
		`    "DPD-BASIC",` + "\n" +
		`    "MOLECULE",` + "\n" +
		`    "OBMD"`
	checkFilesValue = "\n" +
		`    "balance", "crack", "friction", "indent",` + "\n" +
		`    "melt", "min", "nemd", "obstacle", "OBMD"` + "\n"

	// appended to easyconfigs copied from the robot path
	copiedCheckFilesBlock = "check_files = [\n" +
		"    'atm', 'balance', 'colloid', 'crack', 'dipole', 'friction',\n" +
		"    'hugoniostat', 'indent', 'melt', 'min', 'msst',\n" +
		"    'nemd', 'obstacle', 'pour', 'voronoi', 'OBMD'\n" +
		"]"
)

// PlaceholderTokens lists every token the LAMMPS policy substitutes
var PlaceholderTokens = []string{
	tokenVersionSuffix,
	tokenSourceURL,
	tokenSources,
	tokenGeneralPackages,
	tokenCheckFiles,
}

// LAMMPSPolicy builds OBMD development easyconfigs for LAMMPS.
//
// If a placeholder for the derived easyconfig exists, its tokens are
// substituted. Otherwise the released easyconfig is copied with eb and the
// commit's patch and OBMD package are spliced into it.
type LAMMPSPolicy struct {
	PlaceholderDir string
	Fetcher        PatchFetcher
	Tool           EasyconfigTool
	Logger         *zap.Logger
}

// EasyconfigName derives the easyconfig name for a base branch and toolchain
func (p *LAMMPSPolicy) EasyconfigName(baseBranch, toolchain string) Name {
	return Name{
		Component: lammpsComponent,
		Version:   VersionFromBranch(baseBranch),
		Toolchain: toolchain,
		Suffix:    lammpsSuffix,
	}
}

// Toolchains lists the toolchains that have a placeholder for baseBranch's version
func (p *LAMMPSPolicy) Toolchains(baseBranch string) ([]string, error) {
	placeholders, err := ListPlaceholders(p.PlaceholderDir)
	if err != nil {
		return nil, err
	}

	version := VersionFromBranch(baseBranch)
	var toolchains []string
	for _, ph := range placeholders {
		if ph.Name.Component == lammpsComponent && ph.Name.Version == version && ph.Name.Suffix == lammpsSuffix {
			toolchains = append(toolchains, ph.Name.Toolchain)
		}
	}
	return toolchains, nil
}

func (p *LAMMPSPolicy) Generate(ctx context.Context, ws *workspace.Workspace, req Request) (*Outcome, error) {
	if req.Toolchain == "" || strings.ContainsAny(req.Toolchain, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidToolchain, req.Toolchain)
	}

	name := p.EasyconfigName(req.BaseBranch, req.Toolchain)
	p.logger().Info("Derived easyconfig name", zap.String("easyconfig", name.String()))

	placeholder, err := findPlaceholder(p.PlaceholderDir, name.String())
	if err != nil {
		return nil, err
	}
	if placeholder != "" {
		return p.fromPlaceholder(ctx, ws, req, name, placeholder)
	}
	return p.fromCopy(ctx, ws, req, name)
}

// fromPlaceholder substitutes the tokens of an existing placeholder template
func (p *LAMMPSPolicy) fromPlaceholder(ctx context.Context, ws *workspace.Workspace, req Request, name Name, placeholder string) (outcome *Outcome, err error) {
	data, err := os.ReadFile(placeholder)
	if err != nil {
		return nil, fmt.Errorf("failed to read placeholder: %w", err)
	}

	content := Substitute(string(data), []Substitution{
		{Token: tokenVersionSuffix, Value: versionSuffixValue},
		{Token: tokenSourceURL, Value: fmt.Sprintf("%q", p.Fetcher.ArchiveURL(req.Repo))},
		{Token: tokenSources, Value: fmt.Sprintf("%q", req.Commit+".tar.gz")},
		{Token: tokenGeneralPackages, Value: generalPackagesValue},
		{Token: tokenCheckFiles, Value: checkFilesValue},
	})

	path := ws.File(name.WithDevSuffix(lammpsDevSuffix))
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := os.WriteFile(path, []byte(content), workspace.FileMode); err != nil {
		return nil, fmt.Errorf("failed to write easyconfig: %w", err)
	}

	if err := p.injectChecksums(ctx, req, path); err != nil {
		return nil, err
	}

	return &Outcome{
		Status:  StatusGenerated,
		Message: fmt.Sprintf("easyconfig was generated in path %s", ws.Path),
		Path:    path,
	}, nil
}

// fromCopy copies the released easyconfig with eb and splices the commit's
// patch, the OBMD package and the check files into it
func (p *LAMMPSPolicy) fromCopy(ctx context.Context, ws *workspace.Workspace, req Request, name Name) (outcome *Outcome, err error) {
	result, err := p.Tool.CopyEasyconfig(ctx, name.String(), ws.Path)
	if err != nil {
		return nil, err
	}
	if !result.Success() {
		return &Outcome{
			Status:  StatusUnknownTemplate,
			Message: fmt.Sprintf("No config can be generated from unknown easyconfig %s", name),
		}, nil
	}

	path := ws.File(name.String())
	patchPath := gh.PatchPath(ws.Path, req.Commit)

	// A partial workspace would count as generated on the next run
	defer func() {
		if err != nil {
			_ = os.Remove(path)
			_ = os.Remove(patchPath)
		}
	}()

	patch, err := p.Fetcher.FetchPatch(ctx, req.Repo, req.Commit, ws.Path)
	if err != nil {
		return nil, err
	}
	if !patch.Success() {
		return nil, fmt.Errorf("%w: could not download %s (exit code %d)",
			runner.ErrCommandFailed, p.Fetcher.PatchURL(req.Repo, req.Commit), patch.ExitCode)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("eb reported success but %s was not copied: %w", name, err)
		}
		return nil, fmt.Errorf("failed to read copied easyconfig: %w", err)
	}

	content, err := SpliceCopied(string(data), req.Commit)
	if err != nil {
		return nil, fmt.Errorf("easyconfig %s: %w", name, err)
	}

	if err := os.WriteFile(path, []byte(content), workspace.FileMode); err != nil {
		return nil, fmt.Errorf("failed to write easyconfig: %w", err)
	}

	if err := p.injectChecksums(ctx, req, path); err != nil {
		return nil, err
	}

	return &Outcome{
		Status:  StatusCopied,
		Message: fmt.Sprintf("easyconfig %s was copied and patched with %s in path %s", name, gh.PatchFileName(req.Commit), ws.Path),
		Path:    path,
	}, nil
}

// SpliceCopied adds the OBMD package, the commit's patch and the check files
// to a released LAMMPS easyconfig. The easyconfig must contain the lines
// "general_packages = [" and "patches = [".
func SpliceCopied(content, commit string) (string, error) {
	lines := strings.Split(content, "\n")

	lines, err := SpliceAfter(lines, generalPackagesAnchor, obmdPackageLine)
	if err != nil {
		return "", err
	}

	lines, err = SpliceAfter(lines, patchesAnchor, fmt.Sprintf("    '%s',", gh.PatchFileName(commit)))
	if err != nil {
		return "", err
	}

	// ahead of the trailing moduleclass line and final newline
	lines = InsertAt(lines, -2, copiedCheckFilesBlock)

	return strings.Join(lines, "\n"), nil
}

func (p *LAMMPSPolicy) injectChecksums(ctx context.Context, req Request, path string) error {
	if !req.InjectChecksums {
		return nil
	}
	return p.Tool.InjectChecksums(ctx, path)
}

func (p *LAMMPSPolicy) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
