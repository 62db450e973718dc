package extractor

import (
	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/utils"
)

// Selector collects the declarations marked with @doc from declaration files
type Selector struct {
	factory     models.ProjectFactory
	diagnostics *utils.DiagnosticSystem
}

// SelectorOption configures a Selector
type SelectorOption func(*Selector)

// WithDiagnostics reports every file and selected declaration at verbose level
func WithDiagnostics(diagnostics *utils.DiagnosticSystem) SelectorOption {
	return func(s *Selector) {
		s.diagnostics = diagnostics
	}
}

// NewSelector creates a selector that opens a new project from factory for
// every location it collects.
func NewSelector(factory models.ProjectFactory, opts ...SelectorOption) *Selector {
	s := &Selector{
		factory:     factory,
		diagnostics: utils.NewDiagnosticSystem(utils.DiagnosticSilent),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect selects and builds the documented interfaces and type aliases of
// every location, in location order, then file order, then declaration order.
// Within a file, top-level declarations come before those of module blocks.
func (s *Selector) Collect(locations []string) (models.CollectResult, error) {
	result := models.CollectResult{
		Interfaces:  make([]models.InterfaceDescriptor, 0),
		TypeAliases: make([]models.TypeAliasDescriptor, 0),
	}

	for _, location := range locations {
		found, err := s.collectLocation(location)
		if err != nil {
			return models.CollectResult{}, err
		}
		result.Append(found)
	}

	return result, nil
}

func (s *Selector) collectLocation(location string) (models.CollectResult, error) {
	project := s.factory()

	files, err := project.AddSourceFilesAtPaths(location)
	if err != nil {
		return models.CollectResult{}, err
	}
	s.diagnostics.Verbose("%s: %d declaration file(s)", location, len(files))

	var interfaces []models.InterfaceDeclaration
	var aliases []models.TypeAliasDeclaration
	for _, file := range files {
		interfaces = append(interfaces, file.Interfaces()...)
		aliases = append(aliases, file.TypeAliases()...)

		for _, module := range file.Modules() {
			interfaces = append(interfaces, module.Interfaces()...)
			aliases = append(aliases, module.TypeAliases()...)
		}
	}

	var result models.CollectResult
	for _, decl := range interfaces {
		if !HasDocMarker(decl) {
			s.diagnostics.Debug("skipping interface %s: no @doc in its last JSDoc block", decl.Name())
			continue
		}
		s.diagnostics.Verbose("interface %s", decl.Name())
		result.Interfaces = append(result.Interfaces, BuildInterface(decl))
	}
	for _, decl := range aliases {
		if !HasDocMarker(decl) {
			s.diagnostics.Debug("skipping type %s: no @doc in its last JSDoc block", decl.Name())
			continue
		}
		s.diagnostics.Verbose("type %s", decl.Name())
		result.TypeAliases = append(result.TypeAliases, BuildTypeAlias(decl))
	}

	return result, nil
}
