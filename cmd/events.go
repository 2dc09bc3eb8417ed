package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/vshell/internal/eventlog"
)

var eventsCmd = &cobra.Command{
	Use:   "events <file>",
	Short: "Print the commands recorded in an XML session log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", path)
			}
			return err
		}
		defer f.Close()

		events, err := eventlog.ReadAll(f)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			cmd.Println("(no events)")
			return nil
		}
		for _, e := range events {
			cmd.Printf("%s  %s\n", e.Timestamp.Format(eventlog.TimestampLayout), e.Command)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
