// Package editor runs the operator's external editor on a scratch file.
//
// The editor is taken from $VISUAL, then $EDITOR, then a platform default.
// Each Edit call owns a fresh temporary directory that is removed when the
// call returns, whatever the outcome. The call blocks until the editor
// exits; there is no timeout.
package editor
