package models

// Tag names recognized by the extraction pipeline
const (
	TagDoc         = "doc"
	TagDescription = "description"
	TagDefault     = "default"
)

// JSDoc represents one /** */ comment block attached to a declaration
type JSDoc struct {
	Comment string     // leading free text before the first tag
	Tags    []JSDocTag // tags in source order
	Raw     string     // original comment text
}

// JSDocTag represents one @tag inside a comment block
type JSDocTag struct {
	Name string // tag name without the leading @
	Text string // tag comment text, empty when the tag has none
}

// Tag returns the first tag named exactly name
func (d JSDoc) Tag(name string) (JSDocTag, bool) {
	for _, tag := range d.Tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return JSDocTag{}, false
}

// HasTag reports whether the block carries a tag named exactly name
func (d JSDoc) HasTag(name string) bool {
	_, ok := d.Tag(name)
	return ok
}

// TagText returns the text of the first tag named name, or ""
func (d JSDoc) TagText(name string) string {
	tag, _ := d.Tag(name)
	return tag.Text
}
