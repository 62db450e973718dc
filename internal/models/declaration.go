package models

// Declaration is anything in a declaration file that has a name and JSDoc blocks
type Declaration interface {
	Name() string
	// JSDocs returns the attached comment blocks in source order, possibly empty
	JSDocs() []JSDoc
}

// PropertySignature is one property of an interface
type PropertySignature interface {
	Declaration
	TypeText() string
	HasQuestionToken() bool
}

// InterfaceDeclaration is an interface declared in a declaration file
type InterfaceDeclaration interface {
	Declaration
	Properties() []PropertySignature
}

// TypeAliasDeclaration is a type alias declared in a declaration file
type TypeAliasDeclaration interface {
	Declaration
	// TypeText is the aliased type as a type checker prints it
	TypeText() string
	// TypeNodeText is the type annotation as written after '='
	TypeNodeText() string
	// UnionTypeTexts lists the union constituents in declaration order, nil for non-unions
	UnionTypeTexts() []string
}

// ModuleDeclaration is an ambient module or namespace block
type ModuleDeclaration interface {
	Name() string
	Interfaces() []InterfaceDeclaration
	TypeAliases() []TypeAliasDeclaration
}

// SourceFile is one parsed declaration file
type SourceFile interface {
	FilePath() string
	Interfaces() []InterfaceDeclaration
	TypeAliases() []TypeAliasDeclaration
	// Modules returns the module blocks declared at the top level of the file
	Modules() []ModuleDeclaration
}

// Project loads declaration files into source files
type Project interface {
	AddSourceFilesAtPaths(patterns ...string) ([]SourceFile, error)
}

// ProjectFactory creates a fresh project for one selection pass
type ProjectFactory func() Project
