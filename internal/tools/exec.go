// Package tools implements the single capability exposed to the model:
// shell command execution with a hard timeout and bounded output capture.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	// DefaultTimeoutSeconds is the wall-clock limit for one command.
	DefaultTimeoutSeconds = 120

	// maxOutputChars bounds context growth from pathological commands.
	maxOutputChars = 50_000
)

// ExecTool runs shell commands on behalf of the model. Every failure mode
// is converted into textual output: a tool failure must be observable by
// the model and recoverable within the conversation, never a crash.
type ExecTool struct {
	timeout    time.Duration
	workingDir string
}

// NewExecTool creates an ExecTool. workingDir is the CWD for every command
// (empty = process CWD); timeoutSeconds <= 0 selects the 120s default.
func NewExecTool(workingDir string, timeoutSeconds int) *ExecTool {
	t := DefaultTimeoutSeconds
	if timeoutSeconds > 0 {
		t = timeoutSeconds
	}
	return &ExecTool{
		timeout:    time.Duration(t) * time.Second,
		workingDir: workingDir,
	}
}

// Execute runs command under `sh -c` and returns the combined output.
// The result is never empty and never accompanied by an error: non-zero
// exits get an exit-code marker, timeouts and launch failures get error
// markers, and outputs beyond the byte budget are truncated with a marker
// stating the original size.
func (e *ExecTool) Execute(ctx context.Context, command string) string {
	cwd := e.workingDir
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	cmdCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "sh", "-c", command)
	cmd.Dir = cwd

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("[ERROR: Command timed out after %d seconds]", int(e.timeout.Seconds()))
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// Launch failure (missing shell, bad working dir, ...).
			return fmt.Sprintf("[ERROR: %v]", runErr)
		}
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		output += "\n[STDERR]\n" + stderr.String()
	}
	if cmd.ProcessState != nil && cmd.ProcessState.ExitCode() != 0 {
		output += fmt.Sprintf("\n[Exit code: %d]", cmd.ProcessState.ExitCode())
	}
	if output == "" {
		output = "(no output)"
	}
	if n := len(output); n > maxOutputChars {
		output = output[:maxOutputChars] + fmt.Sprintf("\n[TRUNCATED: %d chars total]", n)
	}
	return output
}
