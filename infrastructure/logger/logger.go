package logger

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

type logEntry struct {
	level Level
	log   []byte
}

// Logger writes formatted log messages, tagged with a subsystem name, to
// its Backend at or above a configurable verbosity level.
type Logger struct {
	level        Level
	subsystemTag string
	backend      *Backend
	writeChan    chan logEntry
}

// SetLevel changes the logger's verbosity level; calls below it are
// dropped without formatting their arguments.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Level returns the logger's current verbosity level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) write(level Level, s string) {
	if level < l.level {
		return
	}

	var callsite string
	if l.backend.flag&(LogFlagLongFile|LogFlagShortFile) != 0 {
		if _, file, line, ok := runtime.Caller(2); ok {
			if l.backend.flag&LogFlagShortFile != 0 {
				file = file[strings.LastIndex(file, "/")+1:]
			}
			callsite = fmt.Sprintf(" %s:%d", file, line)
		}
	}

	line := fmt.Sprintf("%s [%s]%s %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), level, callsite, l.subsystemTag, s)

	if !l.backend.IsRunning() {
		// The backend isn't running (Run was never called, or its
		// goroutine has exited after Close); fall back to stderr rather
		// than block or drop the message silently.
		_, _ = os.Stderr.WriteString(line)
		return
	}
	l.writeChan <- logEntry{level: level, log: []byte(line)}
}

// Tracef formats and logs a message at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.write(LevelTrace, fmt.Sprintf(format, args...)) }

// Debugf formats and logs a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof formats and logs a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.write(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf formats and logs a message at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.write(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf formats and logs a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(LevelError, fmt.Sprintf(format, args...)) }

// Criticalf formats and logs a message at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, args...))
}

// defaultBackend is the process-wide backend RegisterSubSystem hands
// loggers out from. It writes nowhere until main() adds a log file and
// calls Run; until then, every Logger.write falls back to stderr since
// nothing is draining writeChan.
var defaultBackend = NewBackend()

// DefaultBackend returns the process-wide Backend used by
// RegisterSubSystem.
func DefaultBackend() *Backend {
	return defaultBackend
}

// RegisterSubSystem returns a Logger tagged with the given subsystem name,
// backed by the package's default Backend, at the info level. Subsystem
// packages call this once at init time: var log = logger.RegisterSubSystem("MINR").
func RegisterSubSystem(subsystemTag string) *Logger {
	logger := defaultBackend.Logger(subsystemTag)
	logger.SetLevel(LevelInfo)
	return logger
}
