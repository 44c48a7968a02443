package timelog

import (
	"os"
	"strings"
	"time"

	"timelog/internal/timeutil"
)

const filePermissions = 0o644

// Append records a new entry at the end of the log. When the entry
// falls on the same calendar day as the last one it joins the last day
// block; otherwise a blank-line separator and a new block are started.
//
// Only the new bytes are appended to the backing file; the file is
// never rewritten or reparsed. If a manual edit left the file without
// a trailing newline, one is prepended so the new entry starts on its
// own line. The write happens before the in-memory
// mutation, so a failed append leaves the log untouched and the two
// representations never diverge.
func (l *Log) Append(description string, at time.Time) (Entry, error) {
	e := Entry{
		Timestamp:   at.Truncate(time.Minute),
		Description: description,
	}

	newDay := true
	if last, ok := l.Last(); ok {
		newDay = !timeutil.SameDay(last.Timestamp, e.Timestamp)
	}

	if l.path != "" {
		var b strings.Builder
		if lacksTrailingNewline(l.path) {
			b.WriteByte('\n')
		}
		if newDay && !l.Empty() {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
		b.WriteByte('\n')

		if err := appendToFile(l.path, b.String()); err != nil {
			return Entry{}, err
		}
	}

	l.add(e)
	return e, nil
}

// lacksTrailingNewline reports whether the file exists, is non-empty
// and does not end with a newline. A hand-edited file can lose its
// final newline; without a pad the next entry would be glued onto the
// last line and break the next parse.
func lacksTrailingNewline(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false
	}

	var last [1]byte
	if _, err := f.ReadAt(last[:], info.Size()-1); err != nil {
		return false
	}
	return last[0] != '\n'
}

// appendToFile writes data at the end of path with O_APPEND, creating
// the file if needed. The parent directory must already exist.
func appendToFile(path, data string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		return &IOError{Op: "append", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	return nil
}
