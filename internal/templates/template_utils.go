package templates

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/toyz/dtsdoc/internal/errors"
)

// TemplateUtils holds the cell formatting used by the document templates
type TemplateUtils struct {
	enableEscape bool
	labels       Labels
}

// NewTemplateUtils creates template utilities for one render
func NewTemplateUtils(enableEscape bool, labels Labels) *TemplateUtils {
	return &TemplateUtils{
		enableEscape: enableEscape,
		labels:       labels,
	}
}

// FuncMap returns the functions available to the document templates
func (tu *TemplateUtils) FuncMap() template.FuncMap {
	return template.FuncMap{
		"flat":     tu.Flatten,
		"cell":     tu.Cell,
		"code":     tu.Code,
		"required": tu.Required,
	}
}

// Flatten keeps text on one table row by turning line breaks into <br>
func (tu *TemplateUtils) Flatten(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "<br>")
}

// Escape replaces every | with \| when escaping is enabled
func (tu *TemplateUtils) Escape(text string) string {
	if !tu.enableEscape {
		return text
	}
	return strings.ReplaceAll(text, "|", `\|`)
}

// Cell formats a type or description cell
func (tu *TemplateUtils) Cell(text string) string {
	return tu.Escape(tu.Flatten(text))
}

// Code formats a type cell as inline code
func (tu *TemplateUtils) Code(text string) string {
	return "`" + tu.Cell(text) + "`"
}

// Required renders the localized yes or no token
func (tu *TemplateUtils) Required(required bool) string {
	if required {
		return tu.labels.Yes
	}
	return tu.labels.No
}

// executeTemplate parses and executes one template with funcMap
func executeTemplate(name, templateStr string, funcMap template.FuncMap, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}
