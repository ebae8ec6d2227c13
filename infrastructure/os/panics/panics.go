// Package panics centralizes panic recovery for goroutines so a single
// worker's crash is logged with a stack trace and the process exits
// cleanly instead of leaving other goroutines running against a
// half-crashed process.
package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/shaicoin/shaicoin/infrastructure/logger"
)

const exitHandlerTimeout = 5 * time.Second

// HandlePanic recovers a panic, logs it along with goroutineStackTrace
// (the stack trace captured at the point the goroutine was spawned, or
// nil for the main goroutine), and exits the process.
func HandlePanic(log *logger.Logger, goroutineStackTrace []byte) {
	err := recover()
	if err == nil {
		return
	}
	reason := fmt.Sprintf("Fatal error: %+v", err)
	exit(log, reason, debug.Stack(), goroutineStackTrace)
}

// GoroutineWrapperFunc returns a function that spawns f in a goroutine
// with HandlePanic installed, capturing the spawn-site stack trace up
// front so it can be logged alongside the panic.
func GoroutineWrapperFunc(log *logger.Logger) func(func()) {
	return func(f func()) {
		stackTrace := debug.Stack()
		go func() {
			defer HandlePanic(log, stackTrace)
			f()
		}()
	}
}

func exit(log *logger.Logger, reason string, currentThreadStackTrace, goroutineStackTrace []byte) {
	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if goroutineStackTrace != nil {
			log.Criticalf("Goroutine stack trace: %s", goroutineStackTrace)
		}
		if currentThreadStackTrace != nil {
			log.Criticalf("Stack trace: %s", currentThreadStackTrace)
		}
		logger.DefaultBackend().Close()
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	os.Exit(1)
}
