package github

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/draftrel/internal/models"
)

// DefaultTool is the release-management CLI invoked when none is configured
const DefaultTool = "gh"

// ToolError reports a release tool invocation that failed
type ToolError struct {
	Command string
	Err     error
}

func (e *ToolError) Error() string {
	return e.Command + " failed: " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// BuildArgs returns the release tool arguments for req:
// release create <tag> -t <title> [-n <notes>] [-d] [--prerelease]
func BuildArgs(req models.ReleaseRequest) []string {
	args := []string{"release", "create", req.Tag, "-t", req.Title}
	if req.HasNotes() {
		args = append(args, "-n", req.Notes)
	}
	if req.Draft {
		args = append(args, "-d")
	}
	if req.Prerelease {
		args = append(args, "--prerelease")
	}
	return args
}

// CommandLine renders bin and args as a copy-pasteable shell line
func CommandLine(bin string, args []string) string {
	parts := []string{bin}
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n'\"\\$`") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// CLIPublisher creates releases by running the gh CLI
type CLIPublisher struct {
	// Bin is the executable to run (default "gh")
	Bin string
	// Dir is the working directory; gh infers the repository from it
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
	// Strict turns a failing tool exit into an error instead of a warning
	Strict bool
	Log    logrus.FieldLogger
}

func (p CLIPublisher) bin() string {
	if p.Bin == "" {
		return DefaultTool
	}
	return p.Bin
}

// CreateDraft runs the release tool. Its output goes straight to the
// terminal. Unless Strict is set the exit status is only logged.
func (p CLIPublisher) CreateDraft(ctx context.Context, req models.ReleaseRequest) error {
	args := BuildArgs(req)
	cmd := exec.CommandContext(ctx, p.bin(), args...)
	cmd.Dir = p.Dir
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if p.Log != nil {
		p.Log.WithField("command", CommandLine(p.bin(), args)).Debug("invoking release tool")
	}

	if err := cmd.Run(); err != nil {
		toolErr := &ToolError{Command: p.bin() + " release create", Err: err}
		if p.Strict {
			return toolErr
		}
		if p.Log != nil {
			p.Log.WithError(toolErr).Warn("release tool reported a failure")
		}
	}
	return nil
}

// DryRunPublisher prints the command a real run would execute
type DryRunPublisher struct {
	Bin string
	Out io.Writer
}

func (p DryRunPublisher) CreateDraft(_ context.Context, req models.ReleaseRequest) error {
	bin := p.Bin
	if bin == "" {
		bin = DefaultTool
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "[dry-run] %s\n", CommandLine(bin, BuildArgs(req)))
	return err
}
