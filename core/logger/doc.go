// Package logger provides a structured logging facility based on Zap.
//
// # Context Awareness
//
// HTTP requests carry a RayID (request id) set by the rayid middleware. WithRayID extracts it
// from the Fiber context and attaches it to the log entry so every line of one request can be
// correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
