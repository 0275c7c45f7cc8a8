package logger

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level and encoder for New.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New builds a logger for the given config. Unknown levels fall back to
// debug, unknown formats to console.
func New(cfg Config) *Logger {
	return newZapLogger(cfg.Level, cfg.Format)
}
