// Package domain defines the core data model for muDB.
//
// Domain types are plain values with no IO dependencies. This package contains:
//
//   - Value: the closed set of stored value types (String and *List)
//   - List: a double-ended string sequence with LRANGE index resolution
//   - Errors: command and data errors reported to clients as error replies
package domain
