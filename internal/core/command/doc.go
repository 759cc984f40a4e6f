// Package command turns decoded request frames into typed commands and runs
// them against the key space.
//
// The command set is closed: Ping, Get, Set, LPush, RPush and LRange. Parse
// validates the name (case-insensitive), arity and argument shapes; Apply
// executes the command and always produces a reply value. Errors found by
// either step are *domain.DomainError values and are reported to the client
// as simple error replies.
package command
