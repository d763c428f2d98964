package errors

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// LogHandler is an ErrorHandler that writes one line per error.
type LogHandler struct {
	// Verbose adds the error kind and stack traces.
	Verbose bool
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a RefreshError.
func (h *LogHandler) HandleError(err *RefreshError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[pullrefresh error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[pullrefresh error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[pullrefresh panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[pullrefresh panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

var (
	traceEnabled atomic.Bool
	traceOut     atomic.Pointer[io.Writer]
)

// SetTrace turns per-pass trace lines (measure, layout, gesture decisions)
// on or off. Tracing is off by default.
func SetTrace(enabled bool) {
	traceEnabled.Store(enabled)
}

// SetTraceOutput redirects trace lines. Nil restores stderr.
func SetTraceOutput(w io.Writer) {
	if w == nil {
		traceOut.Store(nil)
		return
	}
	traceOut.Store(&w)
}

// TraceEnabled reports whether Tracef writes anything.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// Tracef writes a trace line tagged with op when tracing is enabled.
func Tracef(op, format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	var w io.Writer = os.Stderr
	if p := traceOut.Load(); p != nil {
		w = *p
	}
	fmt.Fprintf(w, "[pullrefresh] %s: %s\n", op, fmt.Sprintf(format, args...))
}
