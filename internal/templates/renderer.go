package templates

import (
	"strings"
	"text/template"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/models"
)

// RenderOptions control how the document is rendered
type RenderOptions struct {
	// EnableEscape replaces | with \| in type and description cells
	EnableEscape bool
	// Locale selects the document labels, the default locale when zero
	Locale Locale
}

// Renderer turns descriptors into the Markdown API document
type Renderer struct {
	registry *TemplateRegistry
}

// NewRenderer creates a renderer backed by the built-in templates
func NewRenderer() *Renderer {
	return newRendererWithRegistry(NewTemplateRegistry())
}

// newRendererWithRegistry creates a renderer with custom templates
func newRendererWithRegistry(registry *TemplateRegistry) *Renderer {
	return &Renderer{registry: registry}
}

type interfaceSectionData struct {
	Name        string
	Description string
	Members     []models.MemberDescriptor
	Labels      Labels
}

type typeAliasSectionData struct {
	TypeAliases []models.TypeAliasDescriptor
	Labels      Labels
}

// Render produces the complete document: front matter, one section per
// interface and, when there are any aliases, the type alias table.
func (r *Renderer) Render(interfaces []models.InterfaceDescriptor, typeAliases []models.TypeAliasDescriptor, opts RenderOptions) (string, error) {
	locale := opts.Locale
	if locale.Labels == (Labels{}) {
		locale = DefaultLocale
	}

	funcs := NewTemplateUtils(opts.EnableEscape, locale.Labels).FuncMap()

	frontMatter, err := r.execute(FrontMatterTemplateName, funcs, nil)
	if err != nil {
		return "", err
	}

	var doc strings.Builder
	doc.WriteString(frontMatter)

	for _, iface := range interfaces {
		section, err := r.execute(InterfaceSectionTemplateName, funcs, interfaceSectionData{
			Name:        iface.Name,
			Description: iface.Description,
			Members:     iface.Members,
			Labels:      locale.Labels,
		})
		if err != nil {
			return "", err
		}
		doc.WriteString("\n")
		doc.WriteString(section)
	}

	if len(typeAliases) > 0 {
		section, err := r.execute(TypeAliasSectionTemplateName, funcs, typeAliasSectionData{
			TypeAliases: typeAliases,
			Labels:      locale.Labels,
		})
		if err != nil {
			return "", err
		}
		doc.WriteString("\n")
		doc.WriteString(section)
	}

	return doc.String(), nil
}

// execute runs the registered template name with data
func (r *Renderer) execute(name string, funcs template.FuncMap, data interface{}) (string, error) {
	text, ok := r.registry.Get(name)
	if !ok {
		return "", errors.New(errors.TemplateErrorCode, "template not registered: "+name).
			WithContext("template", name)
	}
	return executeTemplate(name, text, funcs, data)
}
