package session

import "github.com/fakeyudi/vshell/internal/command"

// Info is the startup configuration shown in the banner.
type Info struct {
	SessionID     string
	VFSPath       string
	LogFile       string
	StartupScript string
}

// ShowConfig renders the configuration block.
func (d *Driver) ShowConfig(info Info) {
	d.out.RenderLine("=== emulator configuration ===")
	d.out.RenderLine("Session: " + orNotSet(info.SessionID))
	d.out.RenderLine("VFS Path: " + orNotSet(info.VFSPath))
	d.out.RenderLine("Log File: " + orNotSet(info.LogFile))
	d.out.RenderLine("Startup Script: " + orNotSet(info.StartupScript))
	d.out.RenderLine("==============================")
	d.out.RenderLine("")
}

// Welcome renders the greeting shown when no startup script runs.
func (d *Driver) Welcome() {
	d.out.RenderLine("Welcome to the shell emulator!")
	d.out.RenderLine("User: " + d.state.Username + "@" + d.state.Hostname)
	d.out.RenderLine("Available commands: " + command.Available)
	d.out.RenderLine("")
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}
