package generator

import (
	"path/filepath"

	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/templates"
	"github.com/toyz/dtsdoc/internal/utils"
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Options control a generation run
type Options struct {
	Overwrite    bool
	EnableEscape bool
	Locale       templates.Locale
}

// Generator collects documented declarations, renders them and writes the document
type Generator struct {
	collector   DeclarationCollector
	renderer    DocumentRenderer
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// NewGenerator creates a generator writing through fileOps
func NewGenerator(collector DeclarationCollector, renderer DocumentRenderer, fileOps *fileops.FileOps, diagnostics *utils.DiagnosticSystem) *Generator {
	if fileOps == nil {
		fileOps = fileops.NewFileOps()
	}
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Generator{
		collector:   collector,
		renderer:    renderer,
		fileOps:     fileOps,
		diagnostics: diagnostics,
	}
}

// Generate writes the API document for locations to outputPath.
//
// An existing output is left alone when overwriting is disabled, and nothing
// is written when no declaration carries the @doc marker. Both cases are
// reported through the returned status, not as errors. The overwrite check
// happens before anything is collected or any directory is created.
func (g *Generator) Generate(locations []string, outputPath string, opts Options) (*models.GeneratedDocument, error) {
	doc := &models.GeneratedDocument{FilePath: outputPath}

	if !opts.Overwrite && g.fileOps.Exists(outputPath) {
		g.diagnostics.Warn("%s already exists and overwrite is disabled, nothing written", outputPath)
		doc.Status = models.StatusSkippedExisting
		return doc, nil
	}

	result, err := g.collector.Collect(locations)
	if err != nil {
		return nil, err
	}

	doc.Interfaces = len(result.Interfaces)
	doc.TypeAliases = len(result.TypeAliases)

	if result.IsEmpty() {
		g.diagnostics.Warn("no declaration is marked with @doc, nothing written")
		doc.Status = models.StatusSkippedEmpty
		return doc, nil
	}

	content, err := g.renderer.Render(result.Interfaces, result.TypeAliases, templates.RenderOptions{
		EnableEscape: opts.EnableEscape,
		Locale:       opts.Locale,
	})
	if err != nil {
		return nil, err
	}
	doc.Content = content

	if err := g.fileOps.EnsureDir(filepath.Dir(outputPath), dirPermissions); err != nil {
		return nil, err
	}

	g.diagnostics.PhaseProgress("Writing " + outputPath)
	if err := g.fileOps.WriteFile(outputPath, []byte(content), filePermissions); err != nil {
		return nil, err
	}

	doc.Status = models.StatusWritten
	return doc, nil
}

var _ DocumentGenerator = (*Generator)(nil)
