package extractor

import "regexp"

// importPrefix matches the module qualifier a type printer puts in front of
// types declared in other files, e.g. import("/src/types/validate").
var importPrefix = regexp.MustCompile(`import\(".*?"\)\.`)

// NormalizeTypeText strips every import("<path>"). qualifier from a type text,
// leaving the rest untouched.
func NormalizeTypeText(text string) string {
	if text == "" {
		return ""
	}
	return importPrefix.ReplaceAllString(text, "")
}
