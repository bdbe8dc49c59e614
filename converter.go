package freelearn

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used to derive the plain-text alternative of the report.
	Convert(html string) (string, error)
}
