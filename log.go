package cutstock

// Logger receives diagnostic output from the column-generation loop. The
// default discards everything; wire a real logger with WithLogger.
type Logger interface {
	Printf(format string, v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Printf(format string, v ...interface{}) {}
