package cli

import (
	"os"
	"time"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/extractor"
	"github.com/toyz/dtsdoc/internal/generator"
	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/templates"
	"github.com/toyz/dtsdoc/internal/tsmodel"
	"github.com/toyz/dtsdoc/internal/utils"
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

// GenerationSummary contains information about one run
type GenerationSummary struct {
	Root        string
	Locations   []string
	OutputPath  string
	Status      models.GenerationStatus
	Interfaces  int
	TypeAliases int
	Removed     bool
	Duration    time.Duration
}

// Generator coordinates the CLI generation process
type Generator struct {
	fileOps     *fileops.FileOps
	adjuster    *PathAdjuster
	cleaner     *Cleaner
	diagnostics *utils.DiagnosticSystem
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	fileOps := fileops.NewFileOps()
	return &Generator{
		fileOps:     fileOps,
		adjuster:    NewPathAdjuster(fileOps, diagnostics),
		cleaner:     NewCleaner(fileOps),
		diagnostics: diagnostics,
	}
}

// Run validates config, resolves the paths and writes (or cleans) the document.
//
// Configuration problems are returned as configuration errors. Having no
// usable input is not an error: it is logged and reported as a skipped run.
// Clean runs only need the output path.
func (g *Generator) Run(config Config) (GenerationSummary, error) {
	startTime := time.Now()
	summary := GenerationSummary{}

	g.diagnostics.Verbose("Starting documentation run at %s", startTime.Format("15:04:05"))

	var err error
	root := config.Root
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return summary, errors.WrapFileSystemError("resolve path", ".", err)
		}
	}
	if root, err = g.fileOps.PathValidator().GetAbsolutePath(root); err != nil {
		return summary, err
	}
	summary.Root = root
	summary.OutputPath = g.adjuster.AdjustOutput(config.Output, root)

	if config.Clean {
		removed, err := g.cleaner.CleanDocument(summary.OutputPath)
		if err != nil {
			return summary, err
		}
		summary.Removed = removed
		if !removed {
			g.diagnostics.Info("no document at %s", summary.OutputPath)
		}
		summary.Duration = time.Since(startTime)
		return summary, nil
	}

	if err := config.Validate(); err != nil {
		return summary, err
	}

	locale, err := templates.ParseLocale(config.Locale)
	if err != nil {
		return summary, err
	}

	g.diagnostics.RootPath(root)
	summary.Locations = g.adjuster.AdjustInput(config.Input, root)
	if len(summary.Locations) == 0 {
		g.diagnostics.Warn("no usable declaration files in %v under %s, nothing written", []string(config.Input), root)
		summary.Status = models.StatusSkippedEmpty
		summary.Duration = time.Since(startTime)
		return summary, nil
	}

	g.diagnostics.PhaseHeader("Reading declarations")
	for _, location := range summary.Locations {
		g.diagnostics.PhaseItem(location)
	}

	selector := extractor.NewSelector(
		tsmodel.Factory(
			tsmodel.WithFileOps(g.fileOps),
			tsmodel.WithWarningHandler(func(err error) { g.diagnostics.Warn("%v", err) }),
		),
		extractor.WithDiagnostics(g.diagnostics),
	)
	docGenerator := generator.NewGenerator(selector, templates.NewRenderer(), g.fileOps, g.diagnostics)

	doc, err := docGenerator.Generate(summary.Locations, summary.OutputPath, generator.Options{
		Overwrite:    config.Overwrite,
		EnableEscape: config.EnableEscape,
		Locale:       locale,
	})
	if err != nil {
		return summary, err
	}

	summary.Status = doc.Status
	summary.Interfaces = doc.Interfaces
	summary.TypeAliases = doc.TypeAliases
	summary.Duration = time.Since(startTime)

	if doc.Status == models.StatusWritten {
		g.diagnostics.GenerationComplete(summary.OutputPath)
	}
	if g.diagnostics.Level() >= utils.DiagnosticVerbose {
		g.diagnostics.Summary("Run", map[string]interface{}{
			"locations":    len(summary.Locations),
			"interfaces":   summary.Interfaces,
			"type aliases": summary.TypeAliases,
			"duration":     summary.Duration,
		})
	}
	return summary, nil
}
