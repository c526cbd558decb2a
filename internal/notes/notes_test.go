package notes

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/draftrel/internal/models"
)

type fakeCollector struct {
	text string
	err  error
}

func (f fakeCollector) Collect(context.Context) (string, error) {
	return f.text, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
}

func TestTrimIsIdempotent(t *testing.T) {
	inputs := []string{
		"- fix bug\n- add feature\n",
		"  padded  ",
		"\n\n",
		"already trimmed",
		"",
	}
	for _, in := range inputs {
		once := Trim(in)
		require.Equal(t, once, Trim(once), "input %q", in)
	}
	require.Equal(t, "- fix bug\n- add feature", Trim("- fix bug\n- add feature\n"))
}

func TestGather(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("trims collector output", func(t *testing.T) {
		got, err := Gather(ctx, fakeCollector{text: "- a\n- b\n\n"}, models.FailureAbort, quietLogger())
		require.NoError(t, err)
		require.Equal(t, "- a\n- b", got)
	})

	t.Run("abort propagates", func(t *testing.T) {
		_, err := Gather(ctx, fakeCollector{err: boom}, models.FailureAbort, quietLogger())
		require.ErrorIs(t, err, boom)
	})

	t.Run("empty swallows", func(t *testing.T) {
		got, err := Gather(ctx, fakeCollector{err: boom}, models.FailureEmpty, quietLogger())
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestScriptCollector(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script tests skipped on Windows")
	}
	ctx := context.Background()

	t.Run("captures and trims stdout", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, DefaultScript, "printf '%s\\n' '- fix bug' '- add feature'\n")

		got, err := ScriptCollector{Dir: dir, Log: quietLogger()}.Collect(ctx)
		require.NoError(t, err)
		require.Equal(t, "- fix bug\n- add feature", got)
	})

	t.Run("runs in its directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("here"), 0o644))
		writeScript(t, dir, "pwd.sh", "cat marker\n")

		got, err := ScriptCollector{Script: "pwd.sh", Dir: dir}.Collect(ctx)
		require.NoError(t, err)
		require.Equal(t, "here", got)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "fail.sh", "echo 'no tags found' >&2\nexit 3\n")

		_, err := ScriptCollector{Script: "fail.sh", Dir: dir}.Collect(ctx)
		var scriptErr *ScriptError
		require.ErrorAs(t, err, &scriptErr)
		require.Equal(t, "no tags found", scriptErr.Stderr)
		require.Contains(t, err.Error(), "fail.sh")
	})

	t.Run("missing script", func(t *testing.T) {
		_, err := ScriptCollector{Script: "nope.sh", Dir: t.TempDir()}.Collect(ctx)
		var scriptErr *ScriptError
		require.ErrorAs(t, err, &scriptErr)
	})
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(dir))
}
