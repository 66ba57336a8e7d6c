// Package client talks to the userdirectory gRPC service.
//
// The Client interface is the contract the CLI depends on; GRPCClient is the
// implementation. It keeps the access token returned by Login and attaches it
// to every later call through a unary interceptor. gRPC status codes are
// mapped to the sentinel errors ErrUnavailable and ErrUnauthorized; other
// server rejections surface with the server's message.
package client
