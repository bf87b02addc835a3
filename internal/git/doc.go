// Package git reports whether a saved review is under version control.
//
// Review drafts are meant to be committed alongside the proofs they
// become, so the checks warn when a draft is ignored or not yet tracked.
package git
