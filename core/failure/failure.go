// Package failure gives error types a name and the stack of the code that
// created them.
package failure

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

const maxDepth = 32

// Trace is embedded by error types to report their name and origin.
type Trace struct {
	name  string
	stack errors.StackTrace
}

func (t Trace) Name() string {
	return t.name
}

// Stack formats the recorded frames one per line with file and line numbers.
func (t Trace) Stack() string {
	return fmt.Sprintf("%+v", t.stack)
}

// Here returns a Trace starting at the caller of the error constructor that
// calls it.
func Here(name string) Trace {
	var pcs [maxDepth]uintptr
	// skip runtime.Callers, Here and the constructor
	n := runtime.Callers(3, pcs[:])

	stack := make(errors.StackTrace, n)
	for i, pc := range pcs[:n] {
		stack[i] = errors.Frame(pc)
	}
	return Trace{name: name, stack: stack}
}
