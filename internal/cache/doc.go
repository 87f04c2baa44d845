// Package cache provides a keyed store with TTL-based freshness and deep-copy
// isolation in both directions: values are serialized on Store and decoded
// into caller-owned destinations on Load, so no caller can mutate cached
// state through a value it got back.
//
// Staleness never deletes an entry; a stale Load still yields the value, it
// only reports fresh=false. There is no eviction.
package cache
