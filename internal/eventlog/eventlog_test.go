package eventlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
}

func TestRecordFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, fixedClock)
	if err := l.Record("ls -la"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	want := `<event timestamp="2024-03-09 14:05:07" command="ls -la"/>` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRecordEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, fixedClock)
	if err := l.Record(`cd "my dir" & <x>`); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if strings.Contains(buf.String(), `"my dir"`) {
		t.Errorf("quotes were not escaped: %q", buf.String())
	}

	events, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 1 || events[0].Command != `cd "my dir" & <x>` {
		t.Errorf("ReadAll = %+v", events)
	}
}

func TestOpenWritesSessionStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.xml")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := l.Record("ls"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening appends a second marker.
	l, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	l.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	events, err := ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	var got []string
	for _, e := range events {
		got = append(got, e.Command)
	}
	want := []string{SessionStart, "ls", SessionStart}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("commands = %q, want %q", got, want)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "session.xml"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = Nop{}
	if err := r.Record("anything"); err != nil {
		t.Errorf("Nop.Record: %v", err)
	}
}

// Feature: vshell, Property 3: recorded commands read back unchanged
func TestRecordReadBack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cmds := rapid.SliceOfN(rapid.StringMatching(`[ -~]{0,40}`), 1, 10).Draw(t, "cmds")

		var buf bytes.Buffer
		l := New(&buf, fixedClock)
		for _, c := range cmds {
			if err := l.Record(c); err != nil {
				t.Fatalf("Record(%q): %v", c, err)
			}
		}
		if n := strings.Count(buf.String(), "\n"); n != len(cmds) {
			t.Fatalf("wrote %d lines, want %d", n, len(cmds))
		}

		events, err := ReadAll(&buf)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if len(events) != len(cmds) {
			t.Fatalf("read %d events, want %d", len(events), len(cmds))
		}
		for i, e := range events {
			if e.Command != cmds[i] {
				t.Fatalf("event %d: command %q, want %q", i, e.Command, cmds[i])
			}
			if !e.Timestamp.Equal(fixedClock()) {
				t.Fatalf("event %d: timestamp %v", i, e.Timestamp)
			}
		}
	})
}
