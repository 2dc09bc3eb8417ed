// Package eventlog writes the append-only XML session log: one
// <event timestamp="..." command="..."/> line per recorded command.
package eventlog

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// TimestampLayout is the format of the timestamp attribute.
const TimestampLayout = "2006-01-02 15:04:05"

// SessionStart is recorded once when a log is opened.
const SessionStart = "START_SESSION"

// Recorder receives every raw command line the session executes.
type Recorder interface {
	Record(raw string) error
}

// Nop discards records. It is used when no log target is configured.
type Nop struct{}

func (Nop) Record(string) error { return nil }

// Log writes event records to an underlying writer.
type Log struct {
	w     io.Writer
	c     io.Closer
	clock func() time.Time
}

// New returns a Log writing to w. clock may be nil, in which case
// time.Now is used.
func New(w io.Writer, clock func() time.Time) *Log {
	if clock == nil {
		clock = time.Now
	}
	return &Log{w: w, clock: clock}
}

// Open appends to the log file at path, creating it if needed, and
// records the session start marker.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	l := New(f, nil)
	l.c = f
	if err := l.Record(SessionStart); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// Record writes one event for raw, stamped with the current time.
func (l *Log) Record(raw string) error {
	var buf bytes.Buffer
	buf.WriteString(`<event timestamp="`)
	buf.WriteString(l.clock().Format(TimestampLayout))
	buf.WriteString(`" command="`)
	if err := xml.EscapeText(&buf, []byte(raw)); err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	buf.WriteString("\"/>\n")

	if _, err := l.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the log owns one.
func (l *Log) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}

// Event is one parsed log record.
type Event struct {
	Timestamp time.Time
	Command   string
}

type xmlEvent struct {
	XMLName   xml.Name `xml:"event"`
	Timestamp string   `xml:"timestamp,attr"`
	Command   string   `xml:"command,attr"`
}

// ReadAll parses every event in r. Timestamps are read in the local
// time zone, matching how they were written.
func ReadAll(r io.Reader) ([]Event, error) {
	dec := xml.NewDecoder(r)
	var events []Event
	for {
		var x xmlEvent
		err := dec.Decode(&x)
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing event log: %w", err)
		}
		ts, err := time.ParseInLocation(TimestampLayout, x.Timestamp, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamp %q: %w", x.Timestamp, err)
		}
		events = append(events, Event{Timestamp: ts, Command: x.Command})
	}
}
