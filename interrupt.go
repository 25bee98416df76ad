package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyInterrupt wires SIGINT/SIGTERM to context cancellation. The watch
// loop unwinds cooperatively at its next sleep and main exits cleanly.
func notifyInterrupt() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
