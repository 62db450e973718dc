package extractor

import (
	"fmt"

	"github.com/toyz/dtsdoc/internal/models"
)

type fakeProperty struct {
	name     string
	docs     []models.JSDoc
	typeText string
	optional bool
}

func (p fakeProperty) Name() string { return p.name }
func (p fakeProperty) JSDocs() []models.JSDoc { return p.docs }
func (p fakeProperty) TypeText() string { return p.typeText }
func (p fakeProperty) HasQuestionToken() bool { return p.optional }

type fakeInterface struct {
	name  string
	docs  []models.JSDoc
	props []models.PropertySignature
}

func (d fakeInterface) Name() string { return d.name }
func (d fakeInterface) JSDocs() []models.JSDoc { return d.docs }
func (d fakeInterface) Properties() []models.PropertySignature { return d.props }

type fakeAlias struct {
	name         string
	docs         []models.JSDoc
	typeText     string
	typeNodeText string
	unions       []string
}

func (d fakeAlias) Name() string { return d.name }
func (d fakeAlias) JSDocs() []models.JSDoc { return d.docs }
func (d fakeAlias) TypeText() string { return d.typeText }
func (d fakeAlias) TypeNodeText() string { return d.typeNodeText }
func (d fakeAlias) UnionTypeTexts() []string { return d.unions }

type fakeModule struct {
	name        string
	interfaces  []models.InterfaceDeclaration
	typeAliases []models.TypeAliasDeclaration
}

func (m fakeModule) Name() string { return m.name }
func (m fakeModule) Interfaces() []models.InterfaceDeclaration { return m.interfaces }
func (m fakeModule) TypeAliases() []models.TypeAliasDeclaration { return m.typeAliases }

type fakeFile struct {
	path        string
	interfaces  []models.InterfaceDeclaration
	typeAliases []models.TypeAliasDeclaration
	modules     []models.ModuleDeclaration
}

func (f fakeFile) FilePath() string { return f.path }
func (f fakeFile) Interfaces() []models.InterfaceDeclaration { return f.interfaces }
func (f fakeFile) TypeAliases() []models.TypeAliasDeclaration { return f.typeAliases }
func (f fakeFile) Modules() []models.ModuleDeclaration { return f.modules }

// fakeProject serves files by location and records every call
type fakeProject struct {
	files map[string][]models.SourceFile
	calls *[]string
}

func (p *fakeProject) AddSourceFilesAtPaths(patterns ...string) ([]models.SourceFile, error) {
	var result []models.SourceFile
	for _, pattern := range patterns {
		*p.calls = append(*p.calls, pattern)
		files, ok := p.files[pattern]
		if !ok {
			return nil, fmt.Errorf("no such location: %s", pattern)
		}
		result = append(result, files...)
	}
	return result, nil
}

func docBlock(comment string, tags ...models.JSDocTag) models.JSDoc {
	return models.JSDoc{Comment: comment, Tags: tags}
}

func tag(name, text string) models.JSDocTag {
	return models.JSDocTag{Name: name, Text: text}
}
