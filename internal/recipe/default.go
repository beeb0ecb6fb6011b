package recipe

import "go.uber.org/zap"

// NewDefaultGenerator returns a generator with the LAMMPS policy registered
// and patch-only generation for every other repository
func NewDefaultGenerator(placeholderDir string, fetcher PatchFetcher, tool EasyconfigTool, logger *zap.Logger) *Generator {
	g := NewGenerator(&PatchPolicy{Fetcher: fetcher}, logger)
	g.Register(LAMMPSRepo, &LAMMPSPolicy{
		PlaceholderDir: placeholderDir,
		Fetcher:        fetcher,
		Tool:           tool,
		Logger:         logger,
	})
	return g
}
