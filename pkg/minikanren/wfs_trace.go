package minikanren

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in tracing of stream forcing and goal evaluation.
// Enable by setting env var MINIKANREN_TRACE=1. Off by default and zero
// overhead when disabled: callers on the hot path only pay an atomic
// load, never a log.Printf call.

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("MINIKANREN_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on tracing at runtime, for tests that want to capture
// a trace without setting the environment variable.
func EnableTrace() { traceEnabled.Store(true) }

// DisableTrace turns tracing back off.
func DisableTrace() { traceEnabled.Store(false) }

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[minikanren] "+format, args...)
}
