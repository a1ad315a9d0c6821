package instrumentation

var (
	measurer Measurer
	logger   Logger
)

func init() {
	SetMeasurer(&NilMeasurer{})
	SetLogger(&NilLogger{})
}

// SetMeasurer installs the process-wide metrics provider. Streams report
// their lifecycle measurements through it.
func SetMeasurer(provider Measurer) {
	if provider == nil {
		panic("Metrics provider must be specified")
	}

	measurer = provider
}

// SetLogger installs the process-wide logging provider.
func SetLogger(provider Logger) {
	if provider == nil {
		panic("Logging provider must be specified")
	}

	logger = provider
}

// Metrics returns the installed metrics provider.
func Metrics() Measurer {
	return measurer
}

// Logging returns the installed logging provider.
func Logging() Logger {
	return logger
}
