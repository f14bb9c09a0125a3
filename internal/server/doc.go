// Package server runs the grocery list HTTP API.
//
// It owns the listener lifecycle: start, wait for SIGINT/SIGTERM/SIGQUIT,
// drain in-flight requests, then release the store.
package server
