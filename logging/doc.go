// Package logging provides a minimal logging interface and adapters for the coach.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the coach, validator and search pipeline use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - CoachLogger with component/session context
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	c := coach.New(coachModel, validatorModel, func(o *coach.Options) { o.Logger = logger })
package logging
