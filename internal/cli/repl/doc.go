// Package repl provides the interactive mode of mudb-cli.
//
// Each input line is split into arguments with shell-like quoting and sent
// to the server as one command. The built-ins help, history, exit and quit
// are handled locally; "help PREFIX" lists the commands that complete
// PREFIX. History is kept in memory and persisted between sessions.
package repl
