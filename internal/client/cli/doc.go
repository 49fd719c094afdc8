// Package cli provides the interactive registerface command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL. Typical flow: restore the saved session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login with a face descriptor, Logout
//   - Profile, Update, Enroll a new face, Delete the account
//   - Upload and download face snapshots
//   - List registered users
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
