package tsmodel

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/toyz/dtsdoc/internal/annotations"
	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

// DefaultMaxFileSize is the largest declaration file the project will parse.
const DefaultMaxFileSize = 10 * 1024 * 1024

// DeclarationSuffix marks the files a glob pattern may contribute
const DeclarationSuffix = ".d.ts"

// Project reads declaration files with the tree-sitter TypeScript grammar
type Project struct {
	fileOps     *fileops.FileOps
	jsdoc       commentParser
	maxFileSize int
	onWarning   func(error)
}

// ProjectOption configures a Project
type ProjectOption func(*Project)

// WithMaxFileSize limits the size of a single declaration file
func WithMaxFileSize(bytes int) ProjectOption {
	return func(p *Project) {
		p.maxFileSize = bytes
	}
}

// WithWarningHandler receives non-fatal problems such as syntax errors.
// The errors carry the file and line they were found at.
func WithWarningHandler(handler func(error)) ProjectOption {
	return func(p *Project) {
		p.onWarning = handler
	}
}

// WithFileOps shares file operations (and their content cache) between projects
func WithFileOps(ops *fileops.FileOps) ProjectOption {
	return func(p *Project) {
		p.fileOps = ops
	}
}

// NewProject creates an empty project
func NewProject(opts ...ProjectOption) *Project {
	p := &Project{
		maxFileSize: DefaultMaxFileSize,
		onWarning:   func(error) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fileOps == nil {
		p.fileOps = fileops.NewFileOps()
	}
	if p.jsdoc == nil {
		p.jsdoc = annotations.NewParticipleParser()
	}
	return p
}

// Factory returns a models.ProjectFactory creating projects with opts
func Factory(opts ...ProjectOption) models.ProjectFactory {
	return func() models.Project {
		return NewProject(opts...)
	}
}

// AddSourceFilesAtPaths parses every file matched by the patterns. Patterns
// with glob metacharacters may match nothing and only contribute .d.ts
// files; plain paths must exist.
func (p *Project) AddSourceFilesAtPaths(patterns ...string) ([]models.SourceFile, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		var matches []string
		if p.fileOps.HasMeta(pattern) {
			globbed, err := p.fileOps.Glob(pattern)
			if err != nil {
				return nil, err
			}
			for _, match := range globbed {
				if strings.HasSuffix(match, DeclarationSuffix) {
					matches = append(matches, match)
				}
			}
		} else {
			if !p.fileOps.IsFile(pattern) {
				return nil, errors.FileSystemError("read", pattern, "file does not exist").
					WithSuggestions("Check that the input path points to a .d.ts file")
			}
			matches = []string{pattern}
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}

	files := make([]models.SourceFile, 0, len(paths))
	for _, path := range paths {
		content, err := p.fileOps.ReadFile(path)
		if err != nil {
			return nil, err
		}

		file, err := p.parse(path, content)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// ParseSource parses in-memory declaration text
func (p *Project) ParseSource(name, source string) (models.SourceFile, error) {
	return p.parse(name, []byte(source))
}

func (p *Project) parse(path string, content []byte) (*sourceFile, error) {
	if p.maxFileSize > 0 && len(content) > p.maxFileSize {
		return nil, errors.FileSystemError("read", path,
			fmt.Sprintf("file is %d bytes, limit is %d", len(content), p.maxFileSize))
	}

	if !utf8.Valid(content) {
		return nil, errors.WrapParseError(path, fmt.Errorf("content is not valid UTF-8"))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}
	defer tree.Close()

	file := &sourceFile{path: path}

	root := tree.RootNode()
	if root == nil {
		return file, nil
	}

	if root.HasError() {
		loc := errors.SourceLocation{File: path}
		if node := firstErrorNode(root); node != nil {
			loc.Line = int(node.StartPoint().Row + 1)
			loc.Column = int(node.StartPoint().Column + 1)
		}
		p.onWarning(errors.ParseError("syntax error, declarations may be incomplete").WithLocation(loc))
	}

	walker := &fileWalker{path: path, content: content, jsdoc: p.jsdoc, onWarning: p.onWarning}
	walker.walkProgram(root, file)

	return file, nil
}

// firstErrorNode returns the first ERROR or missing node in source order
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

var _ models.Project = (*Project)(nil)
