package fakefs

import (
	"sync"
)

// Call is one recorded invocation of a mock operation.
type Call struct {
	Op     Operation // Op is the operation that was invoked.
	Args   []any     // Args are the arguments as passed by the caller.
	Result any       // Result is the value returned or passed to the callback; nil when the operation yields nothing.
}

// Recorder records operation invocations for verification in tests.
// It is safe for concurrent use.
//
// Recording is transparent: the wrapped logic executes unchanged and the
// recorder observes arguments, call counts, and results without altering
// them. It is exposed as its own type so the recording contract can be
// tested independently of the mock filesystem that composes it.
type Recorder struct {
	calls [NumOperations]int
	log   []Call
	mu    sync.RWMutex
}

// NewRecorder returns a Recorder with all operation counters at zero
// and an empty call log.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one invocation to the log and increments the counter
// for the given operation. Invalid operations are ignored.
func (r *Recorder) Record(op Operation, args []any, result any) {
	if op >= NumOperations || op < 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[op]++
	r.log = append(r.log, Call{Op: op, Args: args, Result: result})
}

// Count reports the current count for the given operation.
func (r *Recorder) Count(op Operation) int {
	if op >= NumOperations || op < 0 {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.calls[op]
}

// Calls returns the recorded invocations of the given operation, in
// call order.
func (r *Recorder) Calls(op Operation) []Call {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Call
	for _, c := range r.log {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// All returns a copy of the full call log in call order.
func (r *Recorder) All() []Call {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Call(nil), r.log...)
}

// Snapshot returns a copy of all operation counters with their respective counts.
func (r *Recorder) Snapshot() [NumOperations]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.calls
}

// Reset clears the call log and resets all operation counters to zero.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = [NumOperations]int{}
	r.log = nil
}
