// Package output renders server replies for mudb-cli.
//
// The plain format mirrors the familiar redis-cli layout:
//
//	PONG
//	(error) ERR unknown command: FOO
//	(integer) 3
//	"value"
//	(nil)
//	1) "a"
//	2) "b"
//
// The json and yaml formats emit the reply as a document for scripting.
package output
