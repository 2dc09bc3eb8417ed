package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/vshell/internal/command"
	"github.com/fakeyudi/vshell/internal/config"
	"github.com/fakeyudi/vshell/internal/eventlog"
	"github.com/fakeyudi/vshell/internal/logging"
	"github.com/fakeyudi/vshell/internal/session"
	"github.com/fakeyudi/vshell/internal/tui"
)

func runShell(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	delay, err := cfg.Delay()
	if err != nil {
		return err
	}

	// The window needs a terminal; pipes and redirects get line mode.
	interactive := !plainMode && isTerminal(cmd.InOrStdin())

	logger, closeDiag, err := newDiagnostics(cmd, interactive)
	if err != nil {
		return err
	}
	defer closeDiag()

	sessionID := uuid.New().String()
	logger = logger.With("session", sessionID)

	st := newState(cfg)
	rec, closeRec := openRecorder(cfg.LogFile, logger)
	defer closeRec()

	info := session.Info{
		SessionID:     sessionID,
		VFSPath:       cfg.VFSPath,
		LogFile:       cfg.LogFile,
		StartupScript: cfg.StartupScript,
	}

	if interactive {
		screen := &session.Transcript{}
		d := session.NewDriver(st, screen, rec, logger)
		d.ShowConfig(info)
		var replay *session.Replay
		if cfg.StartupScript != "" {
			replay, _ = d.OpenScript(cfg.StartupScript)
		} else {
			d.Welcome()
		}
		return tui.Run(d, screen, replay, delay)
	}

	d := session.NewDriver(st, session.LineRenderer{W: cmd.OutOrStdout()}, rec, logger)
	d.ShowConfig(info)
	if cfg.StartupScript != "" {
		if err := d.RunScript(cmd.Context(), cfg.StartupScript, delay); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	} else {
		d.Welcome()
	}
	return servePlain(cmd.Context(), d, cmd.InOrStdin())
}

// maxInputLine bounds a single stdin line in plain mode.
const maxInputLine = 16 << 20

// servePlain feeds stdin lines to the driver until EOF or exit.
func servePlain(ctx context.Context, d *session.Driver, in io.Reader) error {
	inputs := make(chan session.Input)
	done := make(chan struct{})
	scanErr := make(chan error, 1)
	defer close(done)

	go func() {
		defer close(inputs)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), maxInputLine)
		for sc.Scan() {
			select {
			case inputs <- session.LineSubmitted{Line: sc.Text()}:
			case <-done:
				return
			}
		}
		scanErr <- sc.Err()
	}()

	err := d.Serve(ctx, inputs)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	select {
	case serr := <-scanErr:
		if serr != nil {
			return fmt.Errorf("reading input: %w", serr)
		}
	default:
	}
	return nil
}

// newState builds the session identity and starting directory.
func newState(cfg config.Config) *command.State {
	st := &command.State{
		Username: cfg.Username,
		Hostname: cfg.Hostname,
	}
	if st.Username == "" {
		st.Username = os.Getenv("USER")
	}
	if st.Username == "" {
		st.Username = os.Getenv("USERNAME")
	}
	if st.Username == "" {
		st.Username = "user"
	}
	if st.Hostname == "" {
		if h, err := os.Hostname(); err == nil {
			st.Hostname = h
		} else {
			st.Hostname = "localhost"
		}
	}
	if wd, err := os.Getwd(); err == nil {
		st.Dir = wd
	} else {
		st.Dir = "/"
	}
	if home, err := os.UserHomeDir(); err == nil {
		st.Home = home
	}
	return st
}

// openRecorder opens the XML event log. A failure is reported and the
// session continues without one.
func openRecorder(path string, logger *slog.Logger) (eventlog.Recorder, func()) {
	if path == "" {
		return eventlog.Nop{}, func() {}
	}
	l, err := eventlog.Open(path)
	if err != nil {
		logger.Warn("event log disabled", "path", path, "error", err)
		return eventlog.Nop{}, func() {}
	}
	return l, func() { l.Close() }
}

// newDiagnostics picks the slog destination. The full-screen window owns
// the terminal, so diagnostics there go to --debug-log or nowhere.
func newDiagnostics(cmd *cobra.Command, interactive bool) (*slog.Logger, func(), error) {
	if debugLog != "" {
		f, err := os.OpenFile(debugLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return logging.New(f, slog.LevelDebug), func() { f.Close() }, nil
	}
	if interactive {
		return logging.NewNop(), func() {}, nil
	}
	return logging.New(cmd.ErrOrStderr(), slog.LevelWarn), func() {}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
