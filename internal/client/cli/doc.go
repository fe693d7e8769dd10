// Package cli provides the interactive account-service command-line client.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. Commands prompt for their arguments; passwords are read from
// the terminal without echo.
package cli
