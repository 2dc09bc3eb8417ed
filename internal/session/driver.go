// Package session drives the stub shell: one turn per submitted line,
// history recall, and paced replay of a startup script. It knows nothing
// about the UI; a Renderer receives every output line.
package session

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fakeyudi/vshell/internal/command"
	"github.com/fakeyudi/vshell/internal/eventlog"
	"github.com/fakeyudi/vshell/internal/history"
)

// Renderer shows output to the user.
type Renderer interface {
	// RenderLine appends one line to the output log.
	RenderLine(text string)
	// RenderPrompt replaces the visible prompt.
	RenderPrompt(text string)
}

// Driver owns the session state and the history buffer. It must only be
// used from a single goroutine.
type Driver struct {
	state    *command.State
	history  *history.Buffer
	out      Renderer
	recorder eventlog.Recorder
	log      *slog.Logger
}

// NewDriver creates a driver. A nil recorder disables the event log and
// a nil logger discards diagnostics.
func NewDriver(st *command.State, out Renderer, rec eventlog.Recorder, log *slog.Logger) *Driver {
	if rec == nil {
		rec = eventlog.Nop{}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		state:    st,
		history:  history.New(),
		out:      out,
		recorder: rec,
		log:      log,
	}
}

// State returns the live session state.
func (d *Driver) State() *command.State { return d.state }

// History returns the recall buffer.
func (d *Driver) History() *history.Buffer { return d.history }

// Prompt returns the current prompt string.
func (d *Driver) Prompt() string { return d.state.Prompt() }

// Submit runs one interactive turn for line and reports whether the
// session must end. Blank lines are ignored entirely.
func (d *Driver) Submit(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	d.history.Append(line)
	d.out.RenderLine(d.Prompt() + line)
	d.record(line)

	res := command.Execute(line, d.state, command.Interactive)
	d.render(res)
	d.out.RenderPrompt(d.Prompt())

	d.log.Debug("command executed", "line", line, "outcome", res.Outcome, "syntax", command.IsSyntaxError(res.Err), "err", res.Err)
	return res.Terminate
}

// RecallPrevious returns the previous history entry, if any.
func (d *Driver) RecallPrevious() (string, bool) {
	return d.history.Previous()
}

// RecallNext returns the next history entry. An empty string with true
// means the input should be cleared.
func (d *Driver) RecallNext() (string, bool) {
	return d.history.Next()
}

// Serve handles inputs until the channel closes, an exit command is
// submitted or ctx is cancelled.
func (d *Driver) Serve(ctx context.Context, inputs <-chan Input) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			if reply := d.Handle(in); reply.Terminate {
				return nil
			}
		}
	}
}

// render writes the dispatch output followed by one blank separator.
func (d *Driver) render(res command.Result) {
	for _, l := range res.Output {
		d.out.RenderLine(l)
	}
	d.out.RenderLine("")
}

func (d *Driver) record(line string) {
	if err := d.recorder.Record(line); err != nil {
		d.log.Warn("event log write failed", "command", line, "error", err)
	}
}
