// Package common holds the sentinel errors and metadata keys shared by the
// LearnHub client and server. Match the errors with errors.Is.
package common

import "errors"

// Storage outcomes.
var (
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
)

// Request and service outcomes, mapped to gRPC status codes at the edge.
var (
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
)

// Token outcomes.
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
