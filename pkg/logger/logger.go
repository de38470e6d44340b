package logger

// Info logs a formatted boot/operational message
func Info(format string, args ...interface{}) {
	zlog.Info().Msgf(format, args...)
}

// Warn logs a formatted warning
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msgf(format, args...)
}
