// Package cli is the interactive LearnHub command-line client.
//
// It wires configuration, the local database, the API client and the
// preference controller, then serves a REPL. The theme can be previewed,
// saved and reverted whether or not an account is signed in; signing in
// pulls the theme saved for the account.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
