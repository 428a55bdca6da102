// Package server holds the HTTP server configuration.
//
// The main entry point (cmd/start.go) starts the Fiber application; this package only defines
// the settings it reads: listen port, API key, request body limit and the presign expiry cap.
package server
