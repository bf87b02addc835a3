// Package review defines the review draft an operator edits before it is
// signed elsewhere.
//
// A draft renders to YAML below a fixed comment header and parses back
// strictly: unknown keys, unknown levels and a missing package name are
// rejected with a message that names the offending value. Rendering a parsed
// draft reproduces the text it was parsed from, so untouched drafts survive
// an edit session byte for byte.
package review
