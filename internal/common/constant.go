// Package common contains shared constants and error kinds used across the
// account service and its clients.
package common

// AccessTokenHeaderName is the gRPC metadata key that may carry a raw access
// token on inbound and outbound requests.
const AccessTokenHeaderName = "access_token"

// AuthorizationHeaderName is the gRPC metadata key carrying
// "Bearer <token>".
const AuthorizationHeaderName = "authorization"

// BearerPrefix is the scheme prefix expected in the authorization header.
const BearerPrefix = "Bearer "
