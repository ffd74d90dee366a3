// Package config provides configuration loading, merging, and validation
// facilities for the client and the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetGatewayConfig], which
// return validated, typed views of the merged [StructuredConfig].
package config
