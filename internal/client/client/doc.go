// Package client contains client-side building blocks for registerface.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the registerface backend: Register, Login, profile management and
//     face snapshot URLs.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as ErrUnavailable and ErrUnauthorized.
// Domain answers from the server map onto the sentinels of the common
// package (ErrFaceMismatch, ErrTooManyAttempts, ...). Match with errors.Is.
package client
