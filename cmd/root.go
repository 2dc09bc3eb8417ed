package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/vshell/internal/config"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

var (
	vfsPath       string
	logFile       string
	startupScript string
	scriptDelay   string
	debugLog      string
	plainMode     bool
)

var rootCmd = &cobra.Command{
	Use:   "vshell",
	Short: "A stub command shell with ls, cd and exit",
	Long: `vshell opens a terminal window with an output log and a prompt.
It understands ls, cd and exit; none of them touch the real filesystem.
A startup script can replay commands with a fixed delay, and every
command can be recorded to an XML session log.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)

		// Explicit flags win over both config files.
		cfg.ApplyFlags(config.Config{
			VFSPath:       vfsPath,
			LogFile:       logFile,
			StartupScript: startupScript,
			ScriptDelay:   scriptDelay,
		})

		if _, err := cfg.Delay(); err != nil {
			return err
		}
		return nil
	},
	RunE: runShell,
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&vfsPath, "vfs-path", "", "virtual filesystem path (reserved)")
	pf.StringVar(&logFile, "log-file", "", "append an XML event log to this file")
	pf.StringVar(&startupScript, "startup-script", "", "replay commands from this file at startup")
	pf.StringVar(&scriptDelay, "script-delay", "", "pause between startup script commands (default 500ms)")

	f := rootCmd.Flags()
	f.StringVar(&debugLog, "debug-log", "", "write diagnostics to this file")
	f.BoolVar(&plainMode, "plain", false, "line mode instead of the full-screen window")
}
