package extractor

import "github.com/toyz/dtsdoc/internal/models"

// DeclarationComment is the resolved documentation of an interface or alias
type DeclarationComment struct {
	Description  string
	HasDocMarker bool
}

// MemberComment is the resolved documentation of an interface property
type MemberComment struct {
	Description string
	Default     string
}

// ResolveDeclarationComment reads the last block of docs. The description is
// taken from the @doc text, then the lead comment, then @description.
func ResolveDeclarationComment(docs []models.JSDoc) DeclarationComment {
	block, ok := authoritative(docs)
	if !ok {
		return DeclarationComment{}
	}

	return DeclarationComment{
		Description: firstNonEmpty(
			block.TagText(models.TagDoc),
			block.Comment,
			block.TagText(models.TagDescription),
		),
		HasDocMarker: block.HasTag(models.TagDoc),
	}
}

// ResolveMemberComment reads the last block of docs. Members never take their
// description from @doc.
func ResolveMemberComment(docs []models.JSDoc) MemberComment {
	block, ok := authoritative(docs)
	if !ok {
		return MemberComment{}
	}

	return MemberComment{
		Description: firstNonEmpty(block.Comment, block.TagText(models.TagDescription)),
		Default:     block.TagText(models.TagDefault),
	}
}

// HasDocMarker reports whether decl opts into the generated document
func HasDocMarker(decl models.Declaration) bool {
	return ResolveDeclarationComment(decl.JSDocs()).HasDocMarker
}

// authoritative returns the last block; earlier blocks never contribute
func authoritative(docs []models.JSDoc) (models.JSDoc, bool) {
	if len(docs) == 0 {
		return models.JSDoc{}, false
	}
	return docs[len(docs)-1], true
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
