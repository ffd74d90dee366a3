package server

// Server runs the gateway transports: the chi HTTP API and the
// VaultGateway gRPC service, either or both depending on which listen
// addresses are configured.
type Server interface {
	// RunServer serves every configured transport and blocks until a
	// termination signal arrives.
	RunServer()

	// Shutdown drains in-flight HTTP requests and gRPC calls, then closes
	// the listeners.
	Shutdown()
}
