// Package security keeps operator-supplied draft paths inside the working
// directory.
//
// Paths are rejected when they are:
//   - empty
//   - absolute
//   - escaping the workspace via ..
//   - Windows reserved names (CON, NUL, etc.)
//
// Reads use os.Root, which also refuses symlinks that point outside.
package security
