package planner

import "log"

// Logger is the severity-keyed event sink the planner reports through. A
// caller (or a test) can swap in silence, a structured sink, or the
// stdlib logger below without the planner knowing the difference. Logger
// failures must never propagate: these methods return nothing and the
// planner never checks for one.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// StdLogger adapts the standard library's log.Logger to the Logger
// capability: short, emoji-tagged progress lines.
type StdLogger struct {
	l *log.Logger
}

func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l}
}

func (s *StdLogger) Debugf(format string, args ...any) {
	s.l.Printf("🔧 "+format, args...)
}

func (s *StdLogger) Infof(format string, args ...any) {
	s.l.Printf("ℹ️  "+format, args...)
}

func (s *StdLogger) Warnf(format string, args ...any) {
	s.l.Printf("⚠️  "+format, args...)
}

func (s *StdLogger) Errorf(format string, args ...any) {
	s.l.Printf("❌ "+format, args...)
}
