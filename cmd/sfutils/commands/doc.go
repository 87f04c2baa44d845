// Package commands implements the sfutils CLI: authentication against the
// boluobao API plus quick lookups of the current user, novels, and chapters.
package commands
