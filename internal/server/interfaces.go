package server

// Server is the lifecycle of the API process.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown drains the listener and closes registered resources.
	Shutdown()
}
