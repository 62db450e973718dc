package extractor

import (
	"strings"

	"github.com/toyz/dtsdoc/internal/models"
)

// BuildMember converts one property signature into a descriptor
func BuildMember(prop models.PropertySignature) models.MemberDescriptor {
	comment := ResolveMemberComment(prop.JSDocs())

	return models.MemberDescriptor{
		Name:        prop.Name(),
		Type:        NormalizeTypeText(prop.TypeText()),
		Description: comment.Description,
		Required:    !prop.HasQuestionToken(),
		Default:     comment.Default,
	}
}

// BuildInterface converts an interface declaration into a descriptor with its
// properties in declaration order.
func BuildInterface(decl models.InterfaceDeclaration) models.InterfaceDescriptor {
	comment := ResolveDeclarationComment(decl.JSDocs())

	props := decl.Properties()
	members := make([]models.MemberDescriptor, 0, len(props))
	for _, prop := range props {
		members = append(members, BuildMember(prop))
	}

	return models.InterfaceDescriptor{
		Name:        decl.Name(),
		Description: comment.Description,
		Members:     members,
	}
}

// BuildTypeAlias converts a type alias into a descriptor. Unions of two or
// more constituents are listed under the alias name; any other aliased type
// is shown as written under its resolved type text.
func BuildTypeAlias(decl models.TypeAliasDeclaration) models.TypeAliasDescriptor {
	comment := ResolveDeclarationComment(decl.JSDocs())

	if constituents := decl.UnionTypeTexts(); len(constituents) >= 2 {
		return models.TypeAliasDescriptor{
			Name:        decl.Name(),
			Description: comment.Description,
			Shape:       strings.Join(constituents, " | "),
		}
	}

	return models.TypeAliasDescriptor{
		Name:        NormalizeTypeText(decl.TypeText()),
		Description: comment.Description,
		Shape:       NormalizeTypeText(decl.TypeNodeText()),
	}
}
