package timelog

import (
	"time"

	"timelog/internal/timeutil"
)

// DayBlock is a contiguous run of entries sharing one calendar day,
// separated from the previous day by a blank line on disk. The first
// entry of a block is the arrival marker: it establishes the start
// time for the entry that follows and carries no duration itself.
type DayBlock struct {
	Date    time.Time // midnight of the block's calendar day
	Entries []Entry
}

// Span returns the difference between the block's last and first
// timestamps, which equals the sum of all duration spans in the block.
func (b DayBlock) Span() time.Duration {
	if len(b.Entries) < 2 {
		return 0
	}
	return b.Entries[len(b.Entries)-1].Timestamp.Sub(b.Entries[0].Timestamp)
}

// Log is the in-memory journal, the single owner of the parsed state
// for the process lifetime. The backing file is the durable form: read
// fully on load, appended to (never rewritten) on each new entry.
type Log struct {
	Blocks []DayBlock

	path string
}

// Path returns the backing file path, or "" for an in-memory log.
func (l *Log) Path() string {
	return l.path
}

// SetPath binds the log to a backing file for subsequent appends.
func (l *Log) SetPath(path string) {
	l.path = path
}

// Empty reports whether the log holds no entries.
func (l *Log) Empty() bool {
	return len(l.Blocks) == 0
}

// Len returns the total number of entries across all day blocks.
func (l *Log) Len() int {
	n := 0
	for _, b := range l.Blocks {
		n += len(b.Entries)
	}
	return n
}

// Last returns the chronologically last entry of the log.
func (l *Log) Last() (Entry, bool) {
	if len(l.Blocks) == 0 {
		return Entry{}, false
	}
	entries := l.Blocks[len(l.Blocks)-1].Entries
	return entries[len(entries)-1], true
}

// SinceLast returns the elapsed time between the last entry and now.
// The second return is false for an empty log: "time since last entry"
// is absent then, not zero.
func (l *Log) SinceLast(now time.Time) (time.Duration, bool) {
	last, ok := l.Last()
	if !ok {
		return 0, false
	}
	return now.Sub(last.Timestamp), true
}

// OutOfOrderWarning flags an entry whose timestamp precedes its
// predecessor within the same day block. A hand-edited file can be
// slightly off without being worth rejecting, so this is surfaced as a
// warning rather than a load failure.
type OutOfOrderWarning struct {
	Entry Entry
	Prev  Entry
}

func (w OutOfOrderWarning) String() string {
	return "entry out of order: " + w.Entry.String() + " follows " + w.Prev.String()
}

// Validate walks every day block and reports entries that are not in
// non-decreasing timestamp order. The log itself is left as parsed;
// entries are never re-sorted.
func (l *Log) Validate() []OutOfOrderWarning {
	var warnings []OutOfOrderWarning
	for _, b := range l.Blocks {
		for i := 1; i < len(b.Entries); i++ {
			if b.Entries[i].Timestamp.Before(b.Entries[i-1].Timestamp) {
				warnings = append(warnings, OutOfOrderWarning{
					Entry: b.Entries[i],
					Prev:  b.Entries[i-1],
				})
			}
		}
	}
	return warnings
}

// add places an entry at the end of the log, opening a new day block
// when the entry's calendar day differs from the last entry's.
func (l *Log) add(e Entry) {
	if n := len(l.Blocks); n > 0 {
		last := &l.Blocks[n-1]
		if timeutil.SameDay(last.Date, e.Timestamp) {
			last.Entries = append(last.Entries, e)
			return
		}
	}
	l.Blocks = append(l.Blocks, DayBlock{
		Date:    timeutil.StartOfDay(e.Timestamp),
		Entries: []Entry{e},
	})
}
