package i

// Logger is the leveled logging surface components depend on.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
