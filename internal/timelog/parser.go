package timelog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"
)

// Parse reads the full textual log from r and groups entries into day
// blocks. Blank lines separate blocks; a calendar-day change without a
// blank line also starts a new block, since blocks are keyed by day.
// The first malformed line aborts the parse with a MalformedEntryError
// and no partial log is returned.
func Parse(r io.Reader) (*Log, error) {
	log := &Log{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			var malformed *MalformedEntryError
			if errors.As(err, &malformed) {
				malformed.Line = lineNo
			}
			return nil, err
		}
		log.add(e)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return log, nil
}

// ParseString parses an in-memory log text. Useful for tests and for
// validating editor output before adopting it.
func ParseString(text string) (*Log, error) {
	return Parse(strings.NewReader(text))
}

// Load reads the backing file at path into a Log bound to that path.
// A missing file yields an empty log: the first run starts a new one.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Log{path: path}, nil
		}
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	log, err := Parse(f)
	if err != nil {
		var malformed *MalformedEntryError
		if errors.As(err, &malformed) {
			return nil, err
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	log.path = path
	return log, nil
}

// parseLine parses one "YYYY-MM-DD HH:MM: description" line. The
// returned error is a *MalformedEntryError with the line number left
// for the caller to fill in.
func parseLine(line string) (Entry, error) {
	stamp, description, found := strings.Cut(line, ": ")
	if !found {
		return Entry{}, &MalformedEntryError{Content: line}
	}

	ts, err := time.ParseInLocation(TimeLayout, stamp, time.Local)
	if err != nil {
		return Entry{}, &MalformedEntryError{Content: line, Err: err}
	}

	if strings.TrimSpace(description) == "" {
		return Entry{}, &MalformedEntryError{Content: line}
	}

	return Entry{Timestamp: ts, Description: description}, nil
}
