// Package app wires the client's dependency graph for the CLI: credential
// store, signing-key pool, session, and gateway.
package app
