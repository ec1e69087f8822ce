package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestArgsBuilder(t *testing.T) {
	tests := []struct {
		name string
		args *Args
		want []string
	}{
		{
			name: "verb only",
			args: Command("task", "list"),
			want: []string{"task", "list"},
		},
		{
			name: "positionals",
			args: Command("task", "complete").Pos("42"),
			want: []string{"task", "complete", "42"},
		},
		{
			name: "empty flag omitted",
			args: Command("task", "add").Pos("buy milk").Flag("priority", ""),
			want: []string{"task", "add", "buy milk"},
		},
		{
			name: "flags in call order",
			args: Command("task", "add").Pos("buy milk").Flag("priority", "high").Flag("assignee", "dana"),
			want: []string{"task", "add", "buy milk", "--priority", "high", "--assignee", "dana"},
		},
		{
			name: "bool flag false is still appended",
			args: Command("memory", "list").BoolFlag("archived", boolPtr(false)),
			want: []string{"memory", "list", "--archived", "false"},
		},
		{
			name: "bool flag nil is omitted",
			args: Command("memory", "list").BoolFlag("archived", nil),
			want: []string{"memory", "list"},
		},
		{
			name: "int flag",
			args: Command("task", "list").IntFlag("limit", intPtr(10)).IntFlag("offset", nil),
			want: []string{"task", "list", "--limit", "10"},
		},
		{
			name: "switch",
			args: Command("backup", "create").Switch("compress", true).Switch("verify", false),
			want: []string{"backup", "create", "--compress"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.Argv())
		})
	}
}

func TestArgsString(t *testing.T) {
	a := Command("task", "add").Pos(`write the "final" report`).Flag("priority", "high")
	assert.Equal(t, `task add "write the \"final\" report" --priority high`, a.String())
}
