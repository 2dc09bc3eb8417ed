package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fakeyudi/vshell/internal/command"
)

// CommentPrefix marks a script line that is echoed but not executed.
const CommentPrefix = "#"

// ScriptError reports a startup script that could not be read.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("startup script '%s' not found", e.Path)
	}
	return "script execution failed: " + e.Err.Error()
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Replay steps through a startup script. The host calls Next to echo the
// next command, waits the pacing delay, then calls Run to execute it.
type Replay struct {
	d       *Driver
	lines   []string
	pos     int
	pending string
	done    bool
}

// OpenScript reads the script at path. Read failures are rendered as a
// single error line and reported with false.
func (d *Driver) OpenScript(path string) (*Replay, bool) {
	d.out.RenderLine("executing startup script: " + path)
	d.out.RenderLine("")

	lines, err := readLines(path)
	if err != nil {
		serr := &ScriptError{Path: path, Err: err}
		d.out.RenderLine("error: " + serr.Error())
		d.log.Warn("startup script unavailable", "path", path, "error", err)
		return nil, false
	}
	return &Replay{d: d, lines: lines}, true
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

// Next echoes comments up to the next executable line, echoes that line
// with the prompt and returns true. At the end of the script it renders
// the finish notice and returns false.
func (r *Replay) Next() bool {
	if r.done {
		return false
	}
	for r.pos < len(r.lines) {
		line := strings.TrimSpace(r.lines[r.pos])
		r.pos++
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, CommentPrefix) {
			r.d.out.RenderLine("[comment] " + line)
			continue
		}
		r.pending = line
		r.d.out.RenderLine(r.d.Prompt() + line)
		return true
	}
	r.finish()
	return false
}

// Run executes the line echoed by the last Next. It returns false when
// the command failed and the replay halted.
func (r *Replay) Run() bool {
	if r.done || r.pending == "" {
		return false
	}
	line := r.pending
	r.pending = ""

	res := command.Execute(line, r.d.state, command.Script)
	r.d.record(line)
	r.d.render(res)
	if res.StateChanged {
		r.d.out.RenderPrompt(r.d.Prompt())
	}

	if res.Outcome == command.Failure {
		r.d.out.RenderLine("script halted due to error")
		r.d.log.Info("startup script halted", "line", line, "syntax", command.IsSyntaxError(res.Err), "error", res.Err)
		r.finish()
		return false
	}
	return true
}

// Done reports whether the replay has finished or halted.
func (r *Replay) Done() bool { return r.done }

func (r *Replay) finish() {
	r.done = true
	r.d.out.RenderLine("script execution finished")
	r.d.out.RenderLine("")
}

// RunScript replays the script at path, waiting delay before each
// command. It returns ctx.Err() if cancelled mid-replay.
func (d *Driver) RunScript(ctx context.Context, path string, delay time.Duration) error {
	r, ok := d.OpenScript(path)
	if !ok {
		return nil
	}
	for r.Next() {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		if !r.Run() {
			break
		}
	}
	return nil
}
