package command

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"\t \t", "", nil},
		{"ls", "ls", []string{}},
		{"  ls   -la  ", "ls", []string{"-la"}},
		{`cd "my dir"`, "cd", []string{"my dir"}},
		{`cd 'my dir'`, "cd", []string{"my dir"}},
		{`ls a "b c" 'd e'`, "ls", []string{"a", "b c", "d e"}},
		{`cd my\ dir`, "cd", []string{"my dir"}},
		{`"ls"`, "ls", []string{}},
		{"cd foo(1)", "cd", []string{"foo(1)"}},
		{"ls (a)", "ls", []string{"(a)"}},
		{"ls a|b", "ls", []string{"a|b"}},
		{"ls a;b", "ls", []string{"a;b"}},
		{"cd a&b", "cd", []string{"a&b"}},
		{"cd dir>x", "cd", []string{"dir>x"}},
		{"ls $HOME `pwd` #x ~", "ls", []string{"$HOME", "`pwd`", "#x", "~"}},
		{`cd "a\"b"`, "cd", []string{`a"b`}},
	}
	for _, tt := range tests {
		name, args, err := Tokenize(tt.line)
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error: %v", tt.line, err)
			continue
		}
		if name != tt.wantName {
			t.Errorf("Tokenize(%q): name = %q, want %q", tt.line, name, tt.wantName)
		}
		if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
			t.Errorf("Tokenize(%q): args = %q, want %q", tt.line, args, tt.wantArgs)
		}
	}
}

func TestTokenizeQuoteErrors(t *testing.T) {
	for _, line := range []string{`cd "my dir`, `ls 'abc`, `"`, `ls \`} {
		_, _, err := Tokenize(line)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error, got nil", line)
			continue
		}
		if !IsSyntaxError(err) {
			t.Errorf("Tokenize(%q): expected *SyntaxError, got %T", line, err)
		}
		if err.Error() != "quote usage error" {
			t.Errorf("Tokenize(%q): message = %q, want %q", line, err.Error(), "quote usage error")
		}
	}
}

func TestTokenizeKeepsOperatorsAsText(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"ls a | cd b", []string{"ls", "a", "|", "cd", "b"}},
		{"ls a; cd b", []string{"ls", "a;", "cd", "b"}},
		{"ls a & b", []string{"ls", "a", "&", "b"}},
		{"ls < in > out", []string{"ls", "<", "in", ">", "out"}},
		{`ls "a | b"`, []string{"ls", "a | b"}},
	}
	for _, tt := range tests {
		name, args, err := Tokenize(tt.line)
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error: %v", tt.line, err)
			continue
		}
		got := append([]string{name}, args...)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

// Feature: vshell, Property 1: tokenize, rejoin, re-tokenize is stable
func TestTokenizeRejoinRoundTrip(t *testing.T) {
	word := rapid.StringMatching("[a-zA-Z0-9/._()|;&<>`$#~-]{1,12}")
	quoted := rapid.StringMatching("[a-zA-Z0-9]([a-zA-Z0-9/._ ()|;&<>`$#~-]{0,10}[a-zA-Z0-9])?")
	sep := rapid.SampledFrom([]string{" ", "  ", "\t", " \t "})

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		var sb strings.Builder
		sb.WriteString(sep.Draw(t, "lead"))
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteString(sep.Draw(t, "sep"))
			}
			if rapid.Bool().Draw(t, "quote") {
				q := rapid.SampledFrom([]string{`"`, `'`}).Draw(t, "q")
				sb.WriteString(q + quoted.Draw(t, "quoted") + q)
			} else {
				sb.WriteString(word.Draw(t, "word"))
			}
		}
		line := sb.String()

		name, args, err := Tokenize(line)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", line, err)
		}

		rejoined := strings.Join(append([]string{name}, args...), " ")
		name2, args2, err := Tokenize(rejoined)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", rejoined, err)
		}

		// Tokens containing spaces split again on rejoin, so compare the
		// flattened word sequence.
		want := strings.Fields(rejoined)
		got := append([]string{name2}, args2...)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("re-tokenize of %q: got %q, want %q", rejoined, got, want)
		}
		if !strings.ContainsAny(line, `"'`) {
			if name2 != name || !reflect.DeepEqual(args2, args) {
				t.Fatalf("round trip of %q: got (%q, %q), want (%q, %q)", line, name2, args2, name, args)
			}
		}
	})
}
