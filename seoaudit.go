// Package seoaudit provides a deterministic SEO audit engine for blog
// articles. It normalizes raw HTML into a document model, computes content
// and link metrics, derives actionable improvement suggestions from
// configurable thresholds, and tracks the human approve/reject decision for
// each suggestion across repeated audit runs of the same content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, http/).
package seoaudit
