// Package config loads, merges and validates runtime configuration for the
// grocery list server and terminal client.
//
// Sources, from highest to lowest precedence:
//  1. Command-line flags
//  2. Environment variables, optionally seeded from a .env file
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
