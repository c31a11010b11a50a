package http

import "errors"

var (
	errMissingHeader = errors.New("authorization header is expected")
	errNotBearer     = errors.New(`authorization header must start with "Bearer"`)
	errMissingToken  = errors.New("token not found")
	errExtraParts    = errors.New("authorization header must be bearer token")
)
