// Package command provides the mudb-cli command tree.
//
// It uses urfave/cli/v2. Each data subcommand (ping, get, set, lpush, rpush,
// lrange) validates its arguments with the same parser the server uses,
// sends the command's request frame and prints the reply in the selected
// output format. Running mudb-cli without a subcommand starts the REPL.
package command
