// Package protocol owns the struct message codecs and the message type
// registry.
//
// Ownership boundary:
// - fixed layout message codecs (encrypt handshake, logon, chat)
// - variable length record list codec (marketing messages)
// - message type -> codec registry
//
// Framing above the message body belongs to the transport. Codecs are pure:
// they never log, block, or retain the caller's buffer.
package protocol
