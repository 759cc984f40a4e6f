// Package memory provides the in-memory storage engine for muDB.
//
// The Store maps keys to typed values (domain.String or *domain.List) and is
// shared by every client connection. Keys are spread over a sharded
// concurrent map; each shard has its own RWMutex.
//
// Thread Safety:
//
// Get and Range hold a shard read lock, Set and Push the shard write lock.
// A lock is held only for the data access of a single call, so every
// operation is atomic with respect to other operations on the same key.
//
// Typing:
//
// A key holds exactly one kind of value for its lifetime. An operation that
// finds the other kind returns domain.ErrWrongType and changes nothing.
package memory
