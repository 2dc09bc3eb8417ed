package session

import (
	"fmt"
	"io"
)

// LineRenderer writes each output line to W. Prompt updates are dropped
// because every turn already echoes the prompt with the command.
type LineRenderer struct {
	W io.Writer
}

func (r LineRenderer) RenderLine(text string) {
	fmt.Fprintln(r.W, text)
}

func (r LineRenderer) RenderPrompt(string) {}

// Transcript keeps rendered output in memory.
type Transcript struct {
	Lines  []string
	Prompt string
}

func (t *Transcript) RenderLine(text string)   { t.Lines = append(t.Lines, text) }
func (t *Transcript) RenderPrompt(text string) { t.Prompt = text }
