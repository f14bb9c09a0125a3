// Package http implements the REST transport of the grocery list server.
//
// It wires the /api routes onto a chi router and decodes requests for the
// service layer. Request tracing, access logging and gzip are applied as
// middleware before a handler runs; service and store errors are turned
// into status codes and short plain-text messages in errors_mapper.go.
package http
