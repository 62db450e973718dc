package models

// MemberDescriptor represents one documented property of an interface
type MemberDescriptor struct {
	Name        string // property name
	Type        string // display form of the property type
	Description string // resolved description, may be empty
	Required    bool   // false when the property is declared optional
	Default     string // text of the @default tag, may be empty
}

// InterfaceDescriptor represents one documented interface
type InterfaceDescriptor struct {
	Name        string             // interface name
	Description string             // resolved description, may be empty
	Members     []MemberDescriptor // properties in declaration order
}

// TypeAliasDescriptor represents one documented type alias
type TypeAliasDescriptor struct {
	Name        string // alias name for unions, resolved type text otherwise
	Description string // resolved description, may be empty
	Shape       string // union constituents joined by " | " or the written type
}

// CollectResult holds every descriptor selected for rendering
type CollectResult struct {
	Interfaces  []InterfaceDescriptor
	TypeAliases []TypeAliasDescriptor
}

// IsEmpty reports whether nothing was selected
func (r CollectResult) IsEmpty() bool {
	return len(r.Interfaces) == 0 && len(r.TypeAliases) == 0
}

// Append adds the descriptors of other after those already collected
func (r *CollectResult) Append(other CollectResult) {
	r.Interfaces = append(r.Interfaces, other.Interfaces...)
	r.TypeAliases = append(r.TypeAliases, other.TypeAliases...)
}
