package github

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/draftrel/internal/models"
)

func TestBuildArgs(t *testing.T) {
	t.Run("with notes", func(t *testing.T) {
		req := models.NewReleaseRequest("1.0.0", "- fix bug\n- add feature")
		require.Equal(t,
			[]string{"release", "create", "1.0.0", "-t", "1.0.0", "-n", "- fix bug\n- add feature", "-d"},
			BuildArgs(req))
	})

	t.Run("without notes", func(t *testing.T) {
		req := models.NewReleaseRequest("2.3.1", "")
		require.Equal(t, []string{"release", "create", "2.3.1", "-t", "2.3.1", "-d"}, BuildArgs(req))
	})

	t.Run("prerelease", func(t *testing.T) {
		req := models.NewReleaseRequest("4.0.0-beta", "")
		req.Prerelease = true
		require.Equal(t, []string{"release", "create", "4.0.0-beta", "-t", "4.0.0-beta", "-d", "--prerelease"}, BuildArgs(req))
	})
}

func TestCommandLine(t *testing.T) {
	got := CommandLine("gh", []string{"release", "create", "1.0", "-n", "- a\n- b"})
	require.Equal(t, `gh release create 1.0 -n "- a\n- b"`, got)
}

func TestDryRunPublisher(t *testing.T) {
	var out bytes.Buffer
	err := DryRunPublisher{Out: &out}.CreateDraft(context.Background(), models.NewReleaseRequest("1.0.0", ""))
	require.NoError(t, err)
	require.Equal(t, "[dry-run] gh release create 1.0.0 -t 1.0.0 -d\n", out.String())
}

// fakeTool writes a script that records its arguments one per line
func fakeTool(t *testing.T, exitCode int) (bin, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	bin = filepath.Join(dir, "gh")
	argsFile = filepath.Join(dir, "args")
	script := "#!/bin/sh\nfor a in \"$@\"; do printf '%s\\n' \"$a\" >> \"" + argsFile + "\"; done\necho created\nexit " + strconv.Itoa(exitCode) + "\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, argsFile
}

func TestCLIPublisher(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script tests skipped on Windows")
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	ctx := context.Background()

	t.Run("passes arguments and streams output", func(t *testing.T) {
		bin, argsFile := fakeTool(t, 0)
		var stdout bytes.Buffer
		p := CLIPublisher{Bin: bin, Stdout: &stdout, Stderr: io.Discard, Log: log}

		require.NoError(t, p.CreateDraft(ctx, models.NewReleaseRequest("1.0.0", "- fix bug")))
		require.Equal(t, "created\n", stdout.String())

		recorded, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		require.Equal(t, "release\ncreate\n1.0.0\n-t\n1.0.0\n-n\n- fix bug\n-d", strings.TrimSpace(string(recorded)))
	})

	t.Run("failure ignored by default", func(t *testing.T) {
		bin, _ := fakeTool(t, 1)
		p := CLIPublisher{Bin: bin, Stdout: io.Discard, Stderr: io.Discard, Log: log}
		require.NoError(t, p.CreateDraft(ctx, models.NewReleaseRequest("1.0.0", "")))
	})

	t.Run("failure returned when strict", func(t *testing.T) {
		bin, _ := fakeTool(t, 1)
		p := CLIPublisher{Bin: bin, Stdout: io.Discard, Stderr: io.Discard, Strict: true, Log: log}
		err := p.CreateDraft(ctx, models.NewReleaseRequest("1.0.0", ""))
		var toolErr *ToolError
		require.ErrorAs(t, err, &toolErr)
	})

	t.Run("missing tool is fatal only when strict", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "no-such-gh")
		p := CLIPublisher{Bin: missing, Stdout: io.Discard, Stderr: io.Discard, Log: log}
		require.NoError(t, p.CreateDraft(ctx, models.NewReleaseRequest("1.0.0", "")))

		p.Strict = true
		require.Error(t, p.CreateDraft(ctx, models.NewReleaseRequest("1.0.0", "")))
	})
}
