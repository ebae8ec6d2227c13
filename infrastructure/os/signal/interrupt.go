// Package signal turns SIGINT/SIGTERM into a channel close, the same
// shutdown signal every long-running command in this tree waits on.
package signal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	interruptChannel       = make(chan os.Signal, 1)
	shutdownRequestChannel = make(chan struct{})
	interruptChannelOnce   sync.Once
	shutdownRequestOnce    sync.Once
	interruptChannelClosed chan struct{}
)

// InterruptListener returns a channel that is closed the first time
// SIGINT or SIGTERM is received, or when RequestShutdown is called.
// Repeated calls return the same channel.
func InterruptListener() <-chan struct{} {
	interruptChannelOnce.Do(func() {
		signal.Notify(interruptChannel, os.Interrupt, syscall.SIGTERM)
		interruptChannelClosed = make(chan struct{})
		go func() {
			select {
			case sig := <-interruptChannel:
				log.Infof("Received signal (%s), shutting down...", sig)
			case <-shutdownRequestChannel:
				log.Infof("Shutdown requested, shutting down...")
			}
			close(interruptChannelClosed)
		}()
	})
	return interruptChannelClosed
}

// RequestShutdown requests a graceful shutdown as if an interrupt had
// been received, without needing an actual signal.
func RequestShutdown() {
	shutdownRequestOnce.Do(func() {
		close(shutdownRequestChannel)
	})
}
