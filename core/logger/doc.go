// Package logger provides the structured logging facility based on Zap.
//
// Batch runs and HTTP requests both write through the same logger. Pipeline
// code attaches a run_id field per batch run and a folder field per unit of
// work, so all log lines of one folder can be correlated; HTTP handlers use
// WithRequestID to do the same per request.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Run started")
package logger
