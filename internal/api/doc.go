// Package api is the typed gateway over the remote operations: one method
// per endpoint, each building its query from declared parameters and
// returning the parsed envelope unmodified.
//
// List-valued parameters are comma-joined into a single field. There are no
// retries and no pagination beyond what the remote returns directly; callers
// branch on the envelope's status block.
package api
