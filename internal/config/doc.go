// Package config loads and merges the configuration of the mesh services.
//
// Values are collected from environment variables, command-line flags, an
// optional JSON file, and service-specific defaults, merged in that order.
// The merged result is validated before any server starts; a missing token
// signing key aborts startup.
package config
