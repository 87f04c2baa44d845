// Package sign computes the SFSecurity request signature and manages the
// secret material behind it: the per-app-version appkey table and the
// optional pool of pre-provisioned signing keys.
//
// The digest layout is fixed by the remote service and must match it
// bit-for-bit: MD5 over nonce + millisecond timestamp + uppercased device
// token + appkey, hex-encoded uppercase. The nonce is an uppercase UUID.
package sign
