package models

// GenerationStatus reports how a generation run ended
type GenerationStatus int

const (
	// StatusWritten means the document was written
	StatusWritten GenerationStatus = iota
	// StatusSkippedExisting means the output exists and overwriting is disabled
	StatusSkippedExisting
	// StatusSkippedEmpty means no declaration carries the @doc marker
	StatusSkippedEmpty
)

// String returns a short description of the status
func (s GenerationStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkippedExisting:
		return "skipped: output exists"
	case StatusSkippedEmpty:
		return "skipped: nothing to document"
	default:
		return "unknown"
	}
}

// GeneratedDocument represents the outcome of one generation run
type GeneratedDocument struct {
	FilePath    string           // path the document was (or would have been) written to
	Content     string           // rendered Markdown, empty when skipped
	Status      GenerationStatus // how the run ended
	Interfaces  int              // number of documented interfaces
	TypeAliases int              // number of documented type aliases
}
