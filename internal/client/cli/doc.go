// Package cli is the interactive todokeeper command-line client.
//
// It talks to the server over gRPC with the JSON codec, keeps the session
// token in memory and runs a small REPL until the user exits. A background
// watcher pings the server and shows whether it is reachable.
package cli
