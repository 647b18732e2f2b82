package signals

import (
	"fmt"
	"runtime"
	"strings"
)

// firstExternalCaller returns the file and line of the first caller outside
// of this package. It is used to point invalid listener errors at the code
// that registered the listener.
func firstExternalCaller() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	callers := pcs[0:n]

	frames := runtime.CallersFrames(callers)
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "github.com/go-joe/signals.") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}

	return "unknown caller"
}
