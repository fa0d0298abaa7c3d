package cmd

import (
	"bytes"
	"testing"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()

	// Persistent flag values survive between Execute calls; reset them so
	// tests stay independent.
	dbPath = ""
	verbose = false
	exportFormat = "csv"
	exportOut = ""
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		f.Value.Set("false")
		f.Changed = false
	}

	return buf.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute(--help) error = %v", err)
	}
	for _, sub := range []string{"history", "export", "init"} {
		if !bytes.Contains([]byte(out), []byte(sub)) {
			t.Errorf("help output missing %q subcommand", sub)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute(--version) error = %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("dev")) {
		t.Errorf("version output = %q, want dev build string", out)
	}
}
