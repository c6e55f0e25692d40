package interfaces

// Logger is the structured logging contract used throughout the core.
// Implementations decide the output format; fields may be nil when a
// message needs no context.
//
//	logger.Info("Fused documents", map[string]interface{}{
//		"location":  "Kyoto",
//		"documents": 5,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
