package common

const (
	// AuthorizationHeaderName is the HTTP header and gRPC metadata key that
	// carries the bearer token.
	AuthorizationHeaderName = "authorization"

	// BearerScheme is the prefix expected in front of the token.
	BearerScheme = "Bearer "
)
