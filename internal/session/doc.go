// Package session holds the credential state for one client identity and
// turns it into authenticated requests: the fixed header set, the signature,
// the two session cookies, and the login/logout state machine.
//
// Authentication failures are silent by contract. A failed login leaves the
// session logged out without an error; a failed profile refresh keeps the
// previously cached profile. Only transport failures and construction-time
// validation surface as errors.
package session
