// Package command tokenizes input lines and dispatches the built-in
// commands of the stub shell: ls, cd and exit.
package command

import "fmt"

// Outcome is the per-dispatch success signal.
type Outcome int

const (
	Success Outcome = iota
	Failure
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Mode selects between interactive input and startup script replay.
type Mode int

const (
	Interactive Mode = iota
	Script
)

// Listing is the fixed output of ls.
const Listing = "file1.txt  file2.txt  directory/"

// Available lists the dispatchable command names.
const Available = "ls, cd, exit"

// Result is produced once per dispatch and consumed by the session driver.
type Result struct {
	Output       []string
	Outcome      Outcome
	StateChanged bool
	Terminate    bool
	Err          error // set when Outcome is Failure
}

// Execute tokenizes line and dispatches it. Tokenizer errors become a
// Failure result without reaching command matching.
func Execute(line string, st *State, mode Mode) Result {
	name, args, err := Tokenize(line)
	if err != nil {
		return failure(err)
	}
	return Dispatch(name, args, st, mode)
}

// Dispatch maps name to one of the built-in behaviors. st is only
// mutated by a successful cd.
func Dispatch(name string, args []string, st *State, mode Mode) Result {
	switch name {
	case "exit":
		if mode == Script {
			return Result{Output: []string{"exit command ignored in script"}}
		}
		return Result{Output: []string{"exiting"}, Terminate: true}

	case "ls":
		out := []string{"Command: ls"}
		if len(args) > 0 {
			out = append(out, formatArgs(args))
		}
		out = append(out, Listing)
		return Result{Output: out}

	case "cd":
		switch len(args) {
		case 0:
			return failure(&ArgumentError{Command: "cd", Msg: "requires a directory argument"})
		case 1:
			st.Dir = args[0]
			return Result{
				Output: []string{
					"Command: cd",
					formatArgs(args),
					"current directory changed to: " + st.Dir,
				},
				StateChanged: true,
			}
		default:
			return failure(&ArgumentError{Command: "cd", Msg: "accepts only one argument"})
		}
	}

	r := failure(&UnknownCommandError{Name: name})
	r.Output = append(r.Output, "available commands: "+Available)
	return r
}

func failure(err error) Result {
	return Result{
		Output:  []string{"error: " + err.Error()},
		Outcome: Failure,
		Err:     err,
	}
}

func formatArgs(args []string) string {
	return fmt.Sprintf("Arguments: %q", args)
}
