// Package novel layers lazily-resolved, cached views over the gateway: a
// Novel owning its info and catalogue caches, and Volumes derived from the
// cached catalogue without further network calls.
//
// Wrappers hold the gateway by reference and are discarded by the caller;
// their caches die with them.
package novel
