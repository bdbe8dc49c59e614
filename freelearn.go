// Package freelearn sends a daily reminder about the book currently given
// away on the PacktPub Free Learning page. A run fetches the page, locates
// the product snippet, extracts its fields, asks a language model for a few
// descriptive labels, and mails an HTML report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, smtp/).
package freelearn
