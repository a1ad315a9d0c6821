package instrumentation

// Logger receives the log lines streams and connectors report as they run.
// The activity identifies which stream reported the line.
type Logger interface {
	Debug(activity string, message string)
	Error(activity string, message string)
	Fatal(activity string, message string)
	Info(activity string, message string)
	Panic(activity string, message string)
	Warn(activity string, message string)
}

// NilLogger discards every log line. It is the default provider.
type NilLogger struct{}

func (*NilLogger) Debug(string, string) {}
func (*NilLogger) Error(string, string) {}
func (*NilLogger) Fatal(string, string) {}
func (*NilLogger) Info(string, string)  {}
func (*NilLogger) Panic(string, string) {}
func (*NilLogger) Warn(string, string)  {}
