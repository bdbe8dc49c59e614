package freelearn

import (
	"context"
	"fmt"
)

// LabelInstruction is the system instruction sent to language model classifiers.
const LabelInstruction = "Analyze the book data provided and suggest 1 to 3 labels or themes that best characterize the book. " +
	"Consider the title and the description to determine the overarching theme discussed in the book. " +
	"If the theme can be described in a specific and a generic term, provide only the specific term. " +
	"Valid responses may look like 'Java' or 'Algorithms, Data Structures'."

// SimulatedLabels is returned by classifiers running in simulation mode.
const SimulatedLabels = "Label 1, Label 2, Label 3"

// Classifier derives descriptive labels for a book.
type Classifier interface {
	// Classify returns a comma-separated list of 1 to 3 labels.
	Classify(ctx context.Context, title, author, description string) (string, error)
}

// LabelPrompt builds the user prompt describing a book to a classifier.
func LabelPrompt(title, author, description string) string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nDescription: %s", title, author, description)
}

// LabelResult is the outcome of a classification: labels on success,
// the failure reason otherwise.
type LabelResult struct {
	Labels string
	Err    error
}

// OK reports whether the classification succeeded.
func (r LabelResult) OK() bool {
	return r.Err == nil
}

// LabelSet returns the labels, or an empty string when classification failed.
func (r LabelResult) LabelSet() string {
	if r.Err != nil {
		return ""
	}
	return r.Labels
}

// Classify asks c for the labels of p. Any failure is captured in the
// returned result rather than returned as an error.
func Classify(ctx context.Context, c Classifier, p *Product) LabelResult {
	labels, err := c.Classify(ctx, p.Title, p.Author, p.Description)
	if err != nil {
		return LabelResult{Err: err}
	}
	return LabelResult{Labels: labels}
}
