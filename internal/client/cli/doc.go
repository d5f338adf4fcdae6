// Package cli provides the interactive Iron Bank command-line client.
//
// It wires configuration, the gRPC API client and an interactive REPL. A
// background watcher pings the server and shows whether it is reachable.
//
// Key features:
//   - Register, Login with an e-mailed one-time code, Logout
//   - Forgot / Reset password
//   - Accounts, transaction history and transfers
//   - Statement export, downloaded to a local CSV file
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
