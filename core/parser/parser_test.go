package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleParse() {
	line := Parse("ls -l /tmp\n\n  echo   hi  ", DefaultLimits())

	for i := 0; i < line.Len(); i++ {
		fmt.Printf("%q\n", line.Args(i))
	}

	// Output: ["ls" "-l" "/tmp"]
	// ["echo" "hi"]
}

func TestParse(t *testing.T) {
	cases := map[string]struct {
		line   string
		limits Limits
		want   [][]string
	}{
		"empty": {
			line: "",
			want: nil,
		},
		"whitespace-only": {
			line: " \t \r ",
			want: nil,
		},
		"single": {
			line: "setenv FOO bar",
			want: [][]string{{"setenv", "FOO", "bar"}},
		},
		"tabs-and-runs": {
			line: "\tls\t\t-a  -l ",
			want: [][]string{{"ls", "-a", "-l"}},
		},
		"no-quoting": {
			line: `echo "a b"`,
			want: [][]string{{"echo", `"a`, `b"`}},
		},
		"truncate-args": {
			line:   "a 1 2 3 4 5",
			limits: Limits{MaxCommands: 1, MaxArgs: 3},
			want:   [][]string{{"a", "1", "2"}},
		},
		"truncate-commands": {
			line:   "a\nb\n\n\nc\nd",
			limits: Limits{MaxCommands: 3, MaxArgs: 3},
			want:   [][]string{{"a"}, {"b"}, {"c"}},
		},
		"zero-limits-use-defaults": {
			line: "a 1 2 3 4 5 6 7 8 9 10 11",
			want: [][]string{{"a", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			line := Parse(tc.line, tc.limits)

			var got [][]string
			for i := 0; i < line.Len(); i++ {
				got = append(got, line.Args(i))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLine_Len_nil(t *testing.T) {
	var line *Line
	assert.Equal(t, 0, line.Len())
}

func TestFirstField(t *testing.T) {
	cases := map[string]struct {
		in                string
		lead, field, rest string
	}{
		"empty":      {in: "", lead: "", field: "", rest: ""},
		"blank":      {in: "  ", lead: "  ", field: "", rest: ""},
		"one":        {in: "ls", lead: "", field: "ls", rest: ""},
		"leading":    {in: "  ls -l", lead: "  ", field: "ls", rest: " -l"},
		"tab-inside": {in: "ls\t-l", lead: "", field: "ls", rest: "\t-l"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			lead, field, rest := FirstField(tc.in)
			assert.Equal(t, tc.lead, lead, "lead")
			assert.Equal(t, tc.field, field, "field")
			assert.Equal(t, tc.rest, rest, "rest")
		})
	}
}
