package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/models"
)

// ParticipleParser parses JSDoc comment blocks using alecthomas/participle
type ParticipleParser struct {
	parser *participle.Parser[commentGrammar]
}

// commentGrammar is the root of a JSDoc body once the comment markers are stripped
type commentGrammar struct {
	Lead []string      `parser:"( @Text | @Newline )*"`
	Tags []*tagGrammar `parser:"@@*"`
}

// tagGrammar is one block tag and the text that follows it up to the next tag
type tagGrammar struct {
	Name string   `parser:"@Tag"`
	Body []string `parser:"( @Text | @Newline )*"`
}

// A tag only starts at the beginning of a line. Once a tag is seen the rest of
// the line is text, so "@see @other" yields a single tag.
var jsdocLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Newline", Pattern: `\n`},
		{Name: "Indent", Pattern: `[ \t]+`},
		{Name: "Tag", Pattern: `@[A-Za-z_$][\w$\-]*`, Action: lexer.Push("TagLine")},
		{Name: "Text", Pattern: `[^\n]+`},
	},
	"TagLine": {
		{Name: "Newline", Pattern: `\n`, Action: lexer.Pop()},
		{Name: "Text", Pattern: `[^\n]+`},
	},
})

// NewParticipleParser creates a new JSDoc parser
func NewParticipleParser() *ParticipleParser {
	parser := participle.MustBuild[commentGrammar](
		participle.Lexer(jsdocLexer),
		participle.Elide("Indent"),
	)

	return &ParticipleParser{
		parser: parser,
	}
}

// ParseComment parses one raw /** */ comment into a JSDoc block
func (p *ParticipleParser) ParseComment(raw string) (models.JSDoc, error) {
	body, err := stripCommentMarkers(raw)
	if err != nil {
		return models.JSDoc{}, err
	}

	grammar, err := p.parser.ParseString("", body)
	if err != nil {
		return models.JSDoc{}, errors.WrapParseError("JSDoc comment", err).
			WithContext("comment", raw)
	}

	doc := models.JSDoc{
		Comment: strings.TrimSpace(strings.Join(grammar.Lead, "")),
		Tags:    make([]models.JSDocTag, 0, len(grammar.Tags)),
		Raw:     raw,
	}
	for _, tag := range grammar.Tags {
		doc.Tags = append(doc.Tags, models.JSDocTag{
			Name: strings.TrimPrefix(tag.Name, "@"),
			Text: strings.TrimSpace(strings.Join(tag.Body, "")),
		})
	}

	return doc, nil
}

// IsJSDoc reports whether raw is a /** */ block comment
func IsJSDoc(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "/**") &&
		!strings.HasPrefix(raw, "/**/") &&
		strings.HasSuffix(raw, "*/") &&
		len(raw) >= len("/***/")
}

// stripCommentMarkers removes the comment delimiters and the leading asterisk
// gutter of every line. The result always ends with a newline.
func stripCommentMarkers(raw string) (string, error) {
	if !IsJSDoc(raw) {
		return "", errors.ParseError(fmt.Sprintf("not a JSDoc comment: %q", raw)).
			WithSuggestions("JSDoc blocks must start with '/**' and end with '*/'")
	}

	trimmed := strings.TrimSpace(raw)
	inner := trimmed[len("/**") : len(trimmed)-len("*/")]
	inner = strings.ReplaceAll(inner, "\r\n", "\n")

	lines := strings.Split(inner, "\n")
	var body strings.Builder
	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, "*") {
			line = strings.TrimPrefix(line, "*")
			line = strings.TrimPrefix(line, " ")
		}
		body.WriteString(strings.TrimRight(line, " \t"))
		body.WriteString("\n")
	}

	return body.String(), nil
}
