package jq

// Latest is the single current-result slot. It keeps whichever successful
// result carries the highest start timestamp, regardless of arrival order,
// so convergence does not depend on channel ordering. Only the owning update
// loop writes it; no locking is needed.
type Latest struct {
	current Result
}

// Current returns the reconciled result. The zero Latest holds an empty
// result with the zero timestamp, so any real result replaces it.
func (l Latest) Current() Result { return l.current }

// Apply merges incoming by last-writer-wins on StartedAt and reports whether
// it replaced the current result. Stale and failed results are discarded;
// the strict comparison also makes a duplicate application a no-op.
func (l *Latest) Apply(incoming Result) bool {
	if incoming.Err != nil {
		return false
	}
	if !incoming.StartedAt.After(l.current.StartedAt) {
		return false
	}
	l.current = incoming
	return true
}
