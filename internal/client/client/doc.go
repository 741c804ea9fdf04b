// Package client contains the client-side building blocks of WhatsUT.
//
// GRPCClient is a typed wrapper over every whatsut.ChatService method. It
// attaches the access token received at login to each call and maps gRPC
// status codes to ErrUnavailable and ErrUnauthorized. Refusals the server
// reports as results (unknown user, not the admin, duplicate name) come back
// as errors wrapping ErrRejected.
//
// CallbackServer serves whatsut.CallbackService on a local listener so the
// server can push private-message and file notifications to this client.
//
// InitDatabase opens the local SQLite database and applies the embedded
// migrations for the notification inbox and client metadata.
package client
