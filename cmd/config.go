package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetConfig()
		delay, err := c.Delay()
		if err != nil {
			return err
		}
		cmd.Printf("VFS path:       %s\n", orUnset(c.VFSPath))
		cmd.Printf("Log file:       %s\n", orUnset(c.LogFile))
		cmd.Printf("Startup script: %s\n", orUnset(c.StartupScript))
		cmd.Printf("Script delay:   %s\n", delay)
		cmd.Printf("Username:       %s\n", orUnset(c.Username))
		cmd.Printf("Hostname:       %s\n", orUnset(c.Hostname))
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
}
