// Package client talks to the LearnHub preference server and bootstraps the
// CLI's local database.
//
// GRPCClient attaches the access token to every call and, when the server answers "token expired", refreshes the
// token pair once and retries. gRPC status codes are mapped onto the
// sentinel errors of this package (ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrAlreadyExists, ErrInvalidArgument) so callers can match
// them with errors.Is.
//
// InitDatabase opens the SQLite file with the pure-Go driver and applies the
// embedded goose migrations.
package client
