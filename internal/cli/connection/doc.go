// Package connection provides the mudb-cli connection to a server.
//
// Client speaks RESP over one TCP connection and runs one request at a time.
// Manager dials lazily and keeps the client for the rest of the process.
package connection
