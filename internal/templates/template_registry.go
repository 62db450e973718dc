package templates

// Template names
const (
	FrontMatterTemplateName      = "front-matter"
	InterfaceSectionTemplateName = "interface-section"
	TypeAliasSectionTemplateName = "type-alias-section"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerDocumentTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// Register adds or replaces a template
func (tr *TemplateRegistry) Register(name, template string) {
	tr.templates[name] = template
}

// registerDocumentTemplates registers the parts of the API document
func (tr *TemplateRegistry) registerDocumentTemplates() {
	tr.templates[FrontMatterTemplateName] = `---
title: API
order: 2
---
`

	// One heading, optional description paragraph and a property table per interface
	tr.templates[InterfaceSectionTemplateName] = `## {{flat .Name}}
{{if .Description}}
{{.Description}}
{{end}}
| {{.Labels.Property}} | {{.Labels.Type}} | {{.Labels.Description}} | {{.Labels.Required}} | {{.Labels.Default}} |
| --- | --- | --- | --- | --- |
{{range .Members}}| {{flat .Name}} | {{code .Type}} | {{cell .Description}} | {{required .Required}} | {{flat .Default}} |
{{end}}`

	// Shared table listing every type alias
	tr.templates[TypeAliasSectionTemplateName] = `## {{.Labels.TypeHeading}}

| {{.Labels.AliasName}} | {{.Labels.AliasDescription}} | {{.Labels.AliasType}} |
| --- | --- | --- |
{{range .TypeAliases}}| {{flat .Name}} | {{cell .Description}} | {{code .Shape}} |
{{end}}`
}
