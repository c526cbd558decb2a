package notes

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultScript is the helper looked up next to the executable
const DefaultScript = "scripts/commits-since-tag.sh"

// ScriptError reports a helper script that could not run or exited non-zero
type ScriptError struct {
	Script string
	Stderr string
	Err    error
}

func (e *ScriptError) Error() string {
	msg := fmt.Sprintf("commit log script %s: %v", e.Script, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ScriptCollector runs an external script and uses its stdout as notes.
// The script runs with no arguments and Dir as its working directory.
type ScriptCollector struct {
	// Script path, relative to Dir unless absolute
	Script string
	// Dir defaults to the directory of the running executable
	Dir string
	Log logrus.FieldLogger
}

func (c ScriptCollector) Collect(ctx context.Context) (string, error) {
	dir := c.Dir
	if dir == "" {
		exeDir, err := ExecutableDir()
		if err != nil {
			return "", &ScriptError{Script: c.Script, Err: err}
		}
		dir = exeDir
	}

	script := c.Script
	if script == "" {
		script = DefaultScript
	}
	if !filepath.IsAbs(script) {
		script = filepath.Join(dir, script)
	}

	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{"script": script, "dir": dir}).Debug("running commit log script")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, script)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ScriptError{
			Script: script,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return Trim(stdout.String()), nil
}

// ExecutableDir returns the directory holding the running binary
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	// Resolve symlinks to get actual path
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
