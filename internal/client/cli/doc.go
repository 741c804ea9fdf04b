// Package cli provides the interactive WhatsUT text client.
//
// It wires configuration, the local SQLite inbox, the gRPC API client and
// the session lifecycle (callback endpoint plus heartbeat) into a REPL.
// Commands take their arguments on the command line; only the login and
// register flows prompt, and the password is read without echo.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin closes.
package cli
