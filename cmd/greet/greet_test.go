package greet

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}

	if cmd.Name != "greet" {
		t.Errorf("command name = %q; want %q", cmd.Name, "greet")
	}

	if cmd.Usage == "" {
		t.Error("command usage should not be empty")
	}

	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}
}

func TestGreetCommand_Execute(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe(): %v", err)
	}
	os.Stdout = w

	cmd := GetCommand()
	actionErr := cmd.Action(context.Background(), &cli.Command{})

	w.Close()
	os.Stdout = old

	if actionErr != nil {
		t.Errorf("Action() returned unexpected error: %v", actionErr)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	want := "Hello world!\n"
	if output != want {
		t.Errorf("greet command wrote %q to stdout, want %q", output, want)
	}
}
