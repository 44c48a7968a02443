package timelog

import "fmt"

// MalformedEntryError reports a line that does not match the
// "YYYY-MM-DD HH:MM: description" grammar. A single bad line fails the
// whole load: the log is hand-editable, and skipping lines would
// silently drop data.
type MalformedEntryError struct {
	Line    int    // 1-based line number in the file
	Content string // raw text of the offending line
	Err     error  // underlying timestamp parse error, if any
}

func (e *MalformedEntryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed entry at line %d: %q: %v", e.Line, e.Content, e.Err)
	}
	return fmt.Sprintf("malformed entry at line %d: %q", e.Line, e.Content)
}

func (e *MalformedEntryError) Unwrap() error {
	return e.Err
}

// IOError reports a failed operation on the backing file. The
// in-memory log is never mutated when an IOError is returned, so the
// two representations cannot diverge.
type IOError struct {
	Op   string // "open", "read", or "append"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
