package command

import "fmt"

// SyntaxError is returned when a line cannot be tokenized.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// ArgumentError is returned when a command gets the wrong number of arguments.
type ArgumentError struct {
	Command string
	Msg     string
}

func (e *ArgumentError) Error() string {
	return e.Command + " " + e.Msg
}

// UnknownCommandError is returned for any name outside the dispatch set.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Name)
}
