// Package config provides configuration loading, merging, and validation
// for the signpost client.
//
// Configuration is assembled from multiple sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or --config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
