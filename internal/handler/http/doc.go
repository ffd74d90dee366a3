// Package http implements the HTTP transport of the gateway.
//
// It exposes route wiring, request handlers and middleware for the JSON API.
// Request tracing, access logging, compression and bearer-token
// authentication are handled here before requests reach the service layer.
package http
