// Package server runs the gateway's transport servers.
//
// It binds the HTTP and gRPC listeners for the enabled handlers, serves them
// until a stop signal arrives and then shuts every transport down
// gracefully.
package server
