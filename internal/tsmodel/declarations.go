package tsmodel

import "github.com/toyz/dtsdoc/internal/models"

// sourceFile is a parsed declaration file. Everything is copied out of the
// syntax tree so the tree can be released right after parsing.
type sourceFile struct {
	path        string
	interfaces  []models.InterfaceDeclaration
	typeAliases []models.TypeAliasDeclaration
	modules     []models.ModuleDeclaration
}

func (f *sourceFile) FilePath() string { return f.path }
func (f *sourceFile) Interfaces() []models.InterfaceDeclaration { return f.interfaces }
func (f *sourceFile) TypeAliases() []models.TypeAliasDeclaration { return f.typeAliases }
func (f *sourceFile) Modules() []models.ModuleDeclaration { return f.modules }

// moduleDeclaration is a `declare module`, `module` or `namespace` block
type moduleDeclaration struct {
	name        string
	interfaces  []models.InterfaceDeclaration
	typeAliases []models.TypeAliasDeclaration
}

func (m *moduleDeclaration) Name() string { return m.name }
func (m *moduleDeclaration) Interfaces() []models.InterfaceDeclaration { return m.interfaces }
func (m *moduleDeclaration) TypeAliases() []models.TypeAliasDeclaration { return m.typeAliases }

type interfaceDeclaration struct {
	name       string
	docs       []models.JSDoc
	properties []models.PropertySignature
}

func (d *interfaceDeclaration) Name() string { return d.name }
func (d *interfaceDeclaration) JSDocs() []models.JSDoc { return d.docs }
func (d *interfaceDeclaration) Properties() []models.PropertySignature { return d.properties }

type propertySignature struct {
	name     string
	docs     []models.JSDoc
	typeText string
	optional bool
}

func (p *propertySignature) Name() string { return p.name }
func (p *propertySignature) JSDocs() []models.JSDoc { return p.docs }
func (p *propertySignature) TypeText() string { return p.typeText }
func (p *propertySignature) HasQuestionToken() bool { return p.optional }

type typeAliasDeclaration struct {
	name         string
	docs         []models.JSDoc
	typeText     string
	typeNodeText string
	unionTypes   []string
}

func (d *typeAliasDeclaration) Name() string { return d.name }
func (d *typeAliasDeclaration) JSDocs() []models.JSDoc { return d.docs }
func (d *typeAliasDeclaration) TypeText() string { return d.typeText }
func (d *typeAliasDeclaration) TypeNodeText() string { return d.typeNodeText }
func (d *typeAliasDeclaration) UnionTypeTexts() []string { return d.unionTypes }

// Compile-time interface compliance checks.
var (
	_ models.SourceFile           = (*sourceFile)(nil)
	_ models.ModuleDeclaration    = (*moduleDeclaration)(nil)
	_ models.InterfaceDeclaration = (*interfaceDeclaration)(nil)
	_ models.PropertySignature    = (*propertySignature)(nil)
	_ models.TypeAliasDeclaration = (*typeAliasDeclaration)(nil)
)
