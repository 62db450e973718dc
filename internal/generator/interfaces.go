package generator

import (
	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/templates"
)

// DeclarationCollector selects the documented declarations of input locations
type DeclarationCollector interface {
	Collect(locations []string) (models.CollectResult, error)
}

// DocumentRenderer renders descriptors into the API document
type DocumentRenderer interface {
	Render(interfaces []models.InterfaceDescriptor, typeAliases []models.TypeAliasDescriptor, opts templates.RenderOptions) (string, error)
}

// DocumentGenerator produces the API document for a set of input locations
type DocumentGenerator interface {
	Generate(locations []string, outputPath string, opts Options) (*models.GeneratedDocument, error)
}
