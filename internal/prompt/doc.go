// Package prompt talks to the operator on the interactive error channel.
//
// Everything is written to stderr so that stdout stays machine-parseable
// when redirected:
//   - ReadPassphrase: unlock an existing identity (env, keyring, then prompt)
//   - ReadNewPassphrase: choose a passphrase, entered twice until both match
//   - Ask: y/n question repeated until one of the two answers is given
//
// Setting CREV_PASSPHRASE bypasses all passphrase prompting. Its value is
// used verbatim, without trimming or an empty check.
package prompt
