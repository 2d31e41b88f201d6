package explain

// Ticket identifies one explanation request.
type Ticket struct {
	Seq    uint64
	WordID string
}

// Tracker decides whether an explanation result is still wanted. A result
// is applied only when its ticket is the most recent one issued and the
// card on screen still shows the same word. Tracker is not safe for
// concurrent use; it lives in the UI event loop.
type Tracker struct {
	seq     uint64
	latest  Ticket
	pending bool
}

// Issue starts a request for wordID, superseding any earlier one.
func (t *Tracker) Issue(wordID string) Ticket {
	t.seq++
	t.latest = Ticket{Seq: t.seq, WordID: wordID}
	t.pending = true
	return t.latest
}

// Pending reports whether the latest request has not completed yet.
func (t *Tracker) Pending() bool {
	return t.pending
}

// PendingFor reports whether a request for wordID is in flight.
func (t *Tracker) PendingFor(wordID string) bool {
	return t.pending && t.latest.WordID == wordID
}

// Invalidate drops interest in any in-flight request.
func (t *Tracker) Invalidate() {
	t.pending = false
}

// Accept reports whether a result carrying tk should be applied while
// currentWordID is displayed. An accepted ticket completes the request.
func (t *Tracker) Accept(tk Ticket, currentWordID string) bool {
	if !t.pending || tk != t.latest || tk.WordID != currentWordID {
		return false
	}
	t.pending = false
	return true
}
