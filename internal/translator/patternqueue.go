package translator

import "github.com/funvibe/swiftkt/internal/ir"

// errorSentinelIdentifier is the identifier used for a pattern-binding entry
// enqueued when parsing the pattern itself failed; it matches whichever
// Variable Declaration dequeues it next, per spec.md §4.3.
const errorSentinelIdentifier = "<<Error>>"

// bindingEntry is one FIFO entry recorded by a Pattern Binding Declaration
// and consumed by the following Variable Declaration, per spec.md §4.3.
// A "none" entry (Present == false) means the pattern had no initializer.
type bindingEntry struct {
	Identifier string
	Type       string
	Expression ir.Expression
	Present    bool
}

// patternQueue is the short-lived FIFO confined to translating a single
// brace scope (spec.md §9).
type patternQueue struct {
	entries []bindingEntry
}

func (q *patternQueue) enqueue(e bindingEntry) {
	q.entries = append(q.entries, e)
}

// enqueueError enqueues the error-sentinel entry used when a pattern failed
// to parse; it matches any next Variable Declaration regardless of name.
func (q *patternQueue) enqueueError() {
	q.enqueue(bindingEntry{Identifier: errorSentinelIdentifier, Present: true})
}

// dequeue always pops the next entry. It returns (expr, true) when that
// entry's identifier/type match and it carries an initializer, or when it
// is the error sentinel (which matches unconditionally).
func (q *patternQueue) dequeue(identifier, typ string) (ir.Expression, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	head := q.entries[0]
	q.entries = q.entries[1:]

	if head.Identifier == errorSentinelIdentifier {
		return &ir.ErrorExpression{Reason: "pattern binding failed to parse"}, true
	}
	if !head.Present {
		return nil, false
	}
	if head.Identifier != identifier || head.Type != typ {
		return nil, false
	}
	return head.Expression, true
}
