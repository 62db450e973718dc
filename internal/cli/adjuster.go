package cli

import (
	"path/filepath"
	"strings"

	"github.com/toyz/dtsdoc/internal/utils"
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

const (
	declarationSuffix = ".d.ts"
	declarationGlob   = "*" + declarationSuffix
	defaultOutputDir  = "doc"
	defaultOutputFile = "api.md"
)

// PathAdjuster turns user supplied input and output paths into absolute ones
type PathAdjuster struct {
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// NewPathAdjuster creates a path adjuster; rejected inputs are reported at verbose level
func NewPathAdjuster(fileOps *fileops.FileOps, diagnostics *utils.DiagnosticSystem) *PathAdjuster {
	if fileOps == nil {
		fileOps = fileops.NewFileOps()
	}
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &PathAdjuster{fileOps: fileOps, diagnostics: diagnostics}
}

// AdjustInput resolves inputs against rootDir with a default adjuster
func AdjustInput(inputs []string, rootDir string) []string {
	return NewPathAdjuster(nil, nil).AdjustInput(inputs, rootDir)
}

// AdjustOutput resolves output against rootDir with a default adjuster
func AdjustOutput(output, rootDir string) string {
	return NewPathAdjuster(nil, nil).AdjustOutput(output, rootDir)
}

// AdjustInput resolves every input against rootDir and keeps the usable ones,
// in order. A directory becomes <dir>/*.d.ts, a file must be a .d.ts file and
// a glob pattern must match at least one .d.ts file. Entries outside rootDir
// or missing from disk are dropped. Returns nil when nothing is usable.
func (a *PathAdjuster) AdjustInput(inputs []string, rootDir string) []string {
	if len(inputs) == 0 {
		return nil
	}

	root, err := a.fileOps.PathValidator().GetAbsolutePath(rootDir)
	if err != nil {
		a.diagnostics.Verbose("invalid project root %q: %v", rootDir, err)
		return nil
	}

	var result []string
	for _, input := range inputs {
		if adjusted, ok := a.adjustInputEntry(input, root); ok {
			result = append(result, adjusted)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

func (a *PathAdjuster) adjustInputEntry(input, root string) (string, bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}

	resolved := input
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}
	resolved = filepath.Clean(resolved)

	if !a.fileOps.PathValidator().Within(root, resolved) {
		a.diagnostics.Verbose("skipping %s: outside of project root %s", input, root)
		return "", false
	}

	if a.fileOps.HasMeta(resolved) {
		matches, err := a.fileOps.Glob(resolved)
		if err != nil {
			a.diagnostics.Verbose("skipping %s: %v", input, err)
			return "", false
		}
		for _, match := range matches {
			if strings.HasSuffix(match, declarationSuffix) {
				return resolved, true
			}
		}
		a.diagnostics.Verbose("skipping %s: no declaration file matches", input)
		return "", false
	}

	switch {
	case a.fileOps.IsDir(resolved):
		return filepath.Join(resolved, declarationGlob), true
	case a.fileOps.IsFile(resolved):
		if strings.HasSuffix(resolved, declarationSuffix) {
			return resolved, true
		}
		a.diagnostics.Verbose("skipping %s: not a %s file", input, declarationSuffix)
		return "", false
	default:
		a.diagnostics.Verbose("skipping %s: does not exist", input)
		return "", false
	}
}

// AdjustOutput resolves the document path. An empty output means
// <root>/doc/api.md, a relative one is joined to rootDir, a final segment
// without a dot names a directory that gets api.md, and a trailing dot gets
// the md extension.
func (a *PathAdjuster) AdjustOutput(output, rootDir string) string {
	root, err := a.fileOps.PathValidator().GetAbsolutePath(rootDir)
	if err != nil {
		root = filepath.Clean(rootDir)
	}

	if strings.TrimSpace(output) == "" {
		return filepath.Join(root, defaultOutputDir, defaultOutputFile)
	}

	resolved := output
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}
	resolved = filepath.Clean(resolved)

	if !strings.Contains(filepath.Base(resolved), ".") {
		return filepath.Join(resolved, defaultOutputFile)
	}

	if strings.HasSuffix(resolved, ".") {
		return resolved + "md"
	}

	return resolved
}
