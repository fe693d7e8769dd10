// Package client talks to the account service over gRPC.
//
// GRPCClient keeps the access token returned by Login and attaches it to
// every later call as "authorization: Bearer <token>". gRPC status codes are
// mapped to sentinel errors (ErrUnavailable, ErrUnauthorized, ErrForbidden);
// other failures surface as *RemoteError carrying the server's message.
package client
