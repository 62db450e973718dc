package tsmodel

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/toyz/dtsdoc/internal/annotations"
	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/models"
)

// Node types of the tree-sitter TypeScript grammar used by the walker.
const (
	nodeComment             = "comment"
	nodeExportStatement     = "export_statement"
	nodeAmbientDeclaration  = "ambient_declaration"
	nodeExpressionStatement = "expression_statement"
	nodeInterface           = "interface_declaration"
	nodeTypeAlias           = "type_alias_declaration"
	nodeModule              = "module"
	nodeInternalModule      = "internal_module"
	nodeStatementBlock      = "statement_block"
	nodeInterfaceBody       = "interface_body"
	nodeObjectType          = "object_type"
	nodePropertySignature   = "property_signature"
	nodeTypeAnnotation      = "type_annotation"
	nodeTypeParameters      = "type_parameters"
	nodeUnionType           = "union_type"
	nodeParenthesizedType   = "parenthesized_type"
)

// Aliases of these value kinds print as the value itself; everything else
// prints as the alias name.
var selfPrintingTypes = map[string]bool{
	"predefined_type":        true,
	"literal_type":           true,
	"type_identifier":        true,
	"nested_type_identifier": true,
	"this_type":              true,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// commentParser turns a raw /** */ block into a JSDoc
type commentParser interface {
	ParseComment(raw string) (models.JSDoc, error)
}

// fileWalker copies declarations out of one parsed file
type fileWalker struct {
	path      string
	content   []byte
	jsdoc     commentParser
	onWarning func(error)
}

// walkProgram collects top-level declarations and module blocks
func (w *fileWalker) walkProgram(root *sitter.Node, file *sourceFile) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		statement := root.NamedChild(i)
		decl := w.unwrapStatement(statement)
		if decl == nil {
			continue
		}

		switch decl.Type() {
		case nodeInterface:
			if iface := w.buildInterface(decl, statement); iface != nil {
				file.interfaces = append(file.interfaces, iface)
			}
		case nodeTypeAlias:
			if alias := w.buildTypeAlias(decl, statement); alias != nil {
				file.typeAliases = append(file.typeAliases, alias)
			}
		case nodeModule, nodeInternalModule, nodeStatementBlock:
			if module := w.buildModule(decl); module != nil {
				file.modules = append(file.modules, module)
			}
		}
	}
}

// unwrapStatement returns the declaration carried by a statement, looking
// through export, declare and expression wrappers.
func (w *fileWalker) unwrapStatement(statement *sitter.Node) *sitter.Node {
	switch statement.Type() {
	case nodeInterface, nodeTypeAlias, nodeModule, nodeInternalModule:
		return statement
	case nodeExportStatement, nodeAmbientDeclaration, nodeExpressionStatement:
		for i := 0; i < int(statement.NamedChildCount()); i++ {
			child := statement.NamedChild(i)
			switch child.Type() {
			case nodeInterface, nodeTypeAlias, nodeModule, nodeInternalModule:
				return child
			case nodeStatementBlock:
				// declare global { ... }
				if statement.Type() == nodeAmbientDeclaration {
					return child
				}
			}
		}
	}
	return nil
}

// buildModule collects the interfaces and aliases declared directly inside a
// module block. Nested module blocks are not visited.
func (w *fileWalker) buildModule(node *sitter.Node) *moduleDeclaration {
	module := &moduleDeclaration{}

	body := node
	if node.Type() == nodeStatementBlock {
		module.name = "global"
	} else {
		if name := node.ChildByFieldName("name"); name != nil {
			module.name = w.text(name)
		}
		body = node.ChildByFieldName("body")
	}
	if body == nil {
		return module
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		statement := body.NamedChild(i)
		decl := w.unwrapStatement(statement)
		if decl == nil {
			continue
		}

		switch decl.Type() {
		case nodeInterface:
			if iface := w.buildInterface(decl, statement); iface != nil {
				module.interfaces = append(module.interfaces, iface)
			}
		case nodeTypeAlias:
			if alias := w.buildTypeAlias(decl, statement); alias != nil {
				module.typeAliases = append(module.typeAliases, alias)
			}
		}
	}

	return module
}

// buildInterface copies an interface declaration. anchor is the statement
// the JSDoc blocks are attached to.
func (w *fileWalker) buildInterface(node, anchor *sitter.Node) *interfaceDeclaration {
	var name string
	var body *sitter.Node

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			if name == "" {
				name = w.text(child)
			}
		case nodeInterfaceBody, nodeObjectType:
			body = child
		}
	}

	if name == "" {
		return nil
	}

	iface := &interfaceDeclaration{
		name:       name,
		docs:       w.precedingJSDocs(anchor),
		properties: make([]models.PropertySignature, 0),
	}

	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			member := body.NamedChild(i)
			if member.Type() != nodePropertySignature {
				continue
			}
			if prop := w.buildProperty(member); prop != nil {
				iface.properties = append(iface.properties, prop)
			}
		}
	}

	return iface
}

// buildProperty copies one property signature
func (w *fileWalker) buildProperty(node *sitter.Node) *propertySignature {
	prop := &propertySignature{}

	if name := node.ChildByFieldName("name"); name != nil {
		prop.name = w.text(name)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "?":
			prop.optional = true
		case nodeTypeAnnotation:
			prop.typeText = w.annotationText(child)
		case "property_identifier":
			if prop.name == "" {
				prop.name = w.text(child)
			}
		}
	}

	if prop.name == "" {
		return nil
	}

	prop.docs = w.precedingJSDocs(node)
	return prop
}

// buildTypeAlias copies a type alias declaration
func (w *fileWalker) buildTypeAlias(node, anchor *sitter.Node) *typeAliasDeclaration {
	var name, typeParams string
	value := node.ChildByFieldName("value")

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			if name == "" {
				name = w.text(child)
				continue
			}
		case nodeTypeParameters:
			typeParams = w.text(child)
			continue
		case "type", "=", ";", nodeComment:
			continue
		}
		// Fall back to the first node after the name when the grammar has no value field.
		if value == nil && name != "" && child.IsNamed() {
			value = child
		}
	}

	if name == "" {
		return nil
	}

	alias := &typeAliasDeclaration{
		name: name,
		docs: w.precedingJSDocs(anchor),
	}

	if value == nil {
		alias.typeText = name + typeParams
		return alias
	}

	alias.typeNodeText = w.compact(value)

	inner := unwrapParentheses(value)
	if inner.Type() == nodeUnionType {
		alias.unionTypes = w.unionConstituents(inner)
	}

	if selfPrintingTypes[inner.Type()] {
		alias.typeText = w.compact(inner)
	} else {
		alias.typeText = name + typeParams
	}

	return alias
}

// unionConstituents flattens nested and parenthesized unions into their
// members in order
func (w *fileWalker) unionConstituents(node *sitter.Node) []string {
	var members []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}
		if inner := unwrapParentheses(child); inner.Type() == nodeUnionType {
			members = append(members, w.unionConstituents(inner)...)
			continue
		}
		members = append(members, w.compact(child))
	}
	return members
}

// precedingJSDocs returns the /** */ comments directly above node in source
// order. Other comments in the run are skipped but do not end it. Comments on
// the line where the previous sibling ends trail that sibling.
func (w *fileWalker) precedingJSDocs(node *sitter.Node) []models.JSDoc {
	var comments []*sitter.Node
	prev := node.PrevSibling()
	for ; prev != nil && prev.Type() == nodeComment; prev = prev.PrevSibling() {
		comments = append(comments, prev)
	}
	if prev != nil {
		for len(comments) > 0 && comments[len(comments)-1].StartPoint().Row == prev.EndPoint().Row {
			comments = comments[:len(comments)-1]
		}
	}

	docs := make([]models.JSDoc, 0, len(comments))
	for i := len(comments) - 1; i >= 0; i-- {
		text := w.text(comments[i])
		if !annotations.IsJSDoc(text) {
			continue
		}
		doc, err := w.jsdoc.ParseComment(text)
		if err != nil {
			w.warn(comments[i], err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// warn reports a problem found at node without stopping the walk
func (w *fileWalker) warn(node *sitter.Node, err error) {
	if w.onWarning == nil {
		return
	}
	w.onWarning(errors.Wrap(errors.SyntaxErrorCode, "skipped JSDoc block", err).WithLocation(errors.SourceLocation{
		File:   w.path,
		Line:   int(node.StartPoint().Row + 1),
		Column: int(node.StartPoint().Column + 1),
	}))
}

// annotationText returns the type of a `: T` annotation
func (w *fileWalker) annotationText(node *sitter.Node) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != nodeComment {
			return w.compact(child)
		}
	}
	return strings.TrimSpace(strings.TrimPrefix(w.compactText(w.text(node)), ":"))
}

func (w *fileWalker) text(node *sitter.Node) string {
	return node.Content(w.content)
}

// compact returns the node text on a single line
func (w *fileWalker) compact(node *sitter.Node) string {
	return w.compactText(w.text(node))
}

func (w *fileWalker) compactText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

func unwrapParentheses(node *sitter.Node) *sitter.Node {
	for node.Type() == nodeParenthesizedType && node.NamedChildCount() > 0 {
		node = node.NamedChild(0)
	}
	return node
}
