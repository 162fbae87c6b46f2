package cli

import (
	"io"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"ascii", []string{"ascii"}},
		{"svg,png,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "maze"},
		{"out", "out"},
		{"out.svg", "out"},
		{"out.txt", "out"},
		{"dir/out.png", "dir/out"},
		{"archive.tar", "archive.tar"},
	}
	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "mazetower" {
		t.Errorf("Use = %q, want mazetower", root.Use)
	}
	for _, name := range []string{"generate", "algorithms", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
