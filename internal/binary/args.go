package binary

import (
	"strconv"
	"strings"
)

// Args assembles the argument vector for a tdz invocation. Values are
// kept as discrete argv entries and handed to the process directly, so
// user input never passes through a shell.
type Args struct {
	argv []string
}

// Command starts an argument vector with the given verb, e.g.
// Command("task", "add").
func Command(verb ...string) *Args {
	return &Args{argv: verb}
}

// Pos appends positional arguments verbatim.
func (a *Args) Pos(values ...string) *Args {
	a.argv = append(a.argv, values...)
	return a
}

// Flag appends --name value when value is non-empty.
func (a *Args) Flag(name, value string) *Args {
	if value != "" {
		a.argv = append(a.argv, "--"+name, value)
	}
	return a
}

// IntFlag appends --name value when value is set.
func (a *Args) IntFlag(name string, value *int) *Args {
	if value != nil {
		a.argv = append(a.argv, "--"+name, strconv.Itoa(*value))
	}
	return a
}

// FloatFlag appends --name value when value is set.
func (a *Args) FloatFlag(name string, value *float64) *Args {
	if value != nil {
		a.argv = append(a.argv, "--"+name, strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return a
}

// BoolFlag appends --name true|false when value is set. A nil value
// means the caller omitted the field, which is distinct from false.
func (a *Args) BoolFlag(name string, value *bool) *Args {
	if value != nil {
		a.argv = append(a.argv, "--"+name, strconv.FormatBool(*value))
	}
	return a
}

// Switch appends --name with no value when on is true.
func (a *Args) Switch(name string, on bool) *Args {
	if on {
		a.argv = append(a.argv, "--"+name)
	}
	return a
}

// Argv returns the assembled vector.
func (a *Args) Argv() []string {
	return a.argv
}

// String renders the vector for logs, quoting entries that contain
// whitespace the way they would have to be quoted on a command line.
func (a *Args) String() string {
	return renderArgs(a.argv)
}

func renderArgs(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if strings.ContainsAny(arg, " \t\n\"") {
			parts[i] = strconv.Quote(arg)
		} else {
			parts[i] = arg
		}
	}
	return strings.Join(parts, " ")
}
