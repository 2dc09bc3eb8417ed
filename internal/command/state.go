package command

import "strings"

// State is the mutable session state shared by every dispatch.
type State struct {
	Dir      string
	Username string
	Hostname string
	// Home shortens Dir to a ~ prefix in the prompt. Empty disables it.
	Home string
}

// ShortDir returns Dir with the home directory replaced by ~.
func (s *State) ShortDir() string {
	if s.Home != "" && strings.HasPrefix(s.Dir, s.Home) {
		return "~" + s.Dir[len(s.Home):]
	}
	return s.Dir
}

// Prompt returns the prompt string, e.g. "alice@box:~/src$ ".
func (s *State) Prompt() string {
	return s.Username + "@" + s.Hostname + ":" + s.ShortDir() + "$ "
}
