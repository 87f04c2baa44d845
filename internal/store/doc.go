// Package store persists the client's credential record on disk, sealed with
// a passphrase. Writes go through a temp file then rename.
package store
