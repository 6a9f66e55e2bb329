// Package session is the seam between the transport and the struct codecs.
//
// Ownership boundary:
// - message type -> codec dispatch for already framed bodies
// - unregistered type skip policy
// - decode/encode logging and codec metrics
//
// Framing, encryption and reconnect behavior stay with the transport.
package session
