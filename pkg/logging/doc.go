// Package logging provides structured logging utilities for the katas CLI and packages.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("katas", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("drink made", "drink", "latte")
//	    slog.Debug("dispensed", "kind", "milk", "quantity", 35)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("katas", "v2.0.0", "debug")
//	logger.Info("machine ready", "drinks", 4)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("katas", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug katas coffee --drink latte --size big
//	LOG_LEVEL=error katas weather --date 31.08.2018
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "drink made",
//	    "module": "katas",
//	    "version": "v1.0.0",
//	    "drink": "latte"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "coffee.(*TableRecipe).Make",
//	        "file": "recipe.go",
//	        "line": 45
//	    },
//	    "msg": "dispensing ingredients",
//	    "module": "katas",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("weather summarized",
//	    "date", "31.08.2018",
//	    "samples", 4,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("dispensed", "kind", k)  // Development/troubleshooting
//	slog.Info("drink made")             // Normal operations
//	slog.Warn("empty weather response") // Potential issues
//	slog.Error("command failed")        // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to parse entry",
//	    "error", err,
//	    "line", line,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/coffee - Recipe and dispensing logging
//   - pkg/weather - Fake server and client logging
//   - pkg/bankocr - Entry parsing logging
//
// All components share consistent logging format and configuration.
package logging
