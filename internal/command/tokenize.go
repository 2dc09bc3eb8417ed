package command

import (
	"errors"

	"github.com/kballard/go-shellquote"
)

var errQuoteUsage = &SyntaxError{Msg: "quote usage error"}

// Tokenize splits line into a command name and its arguments.
// Quoted spans form a single token with the quotes removed. Characters
// such as |, ; and ( are ordinary word characters. Blank input yields an
// empty name and no arguments.
func Tokenize(line string) (string, []string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		switch {
		case errors.Is(err, shellquote.UnterminatedSingleQuoteError),
			errors.Is(err, shellquote.UnterminatedDoubleQuoteError),
			errors.Is(err, shellquote.UnterminatedEscapeError):
			return "", nil, errQuoteUsage
		}
		return "", nil, &SyntaxError{Msg: err.Error()}
	}
	if len(words) == 0 {
		return "", nil, nil
	}
	return words[0], words[1:], nil
}

// IsSyntaxError reports whether err came from the tokenizer.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
