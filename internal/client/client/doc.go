// Package client contains the client side of the Iron Bank gRPC API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     registration, the two-step login, password reset, accounts, history,
//     transfers and statement export.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, keeps the session token obtained from VerifyOTP, injects it
//     via an interceptor and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrRejected, ErrConflict. The
// server's message is kept in the wrapped error text.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
