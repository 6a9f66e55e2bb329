// Package enums holds the integer-keyed symbol domains consumed by the
// message codecs: message type identifiers, result codes and realms.
//
// Each domain resolves a raw wire value to a symbol and reports failure
// for values it does not know. Unknown values are never converted
// silently; callers decide what an unresolved value means.
package enums
