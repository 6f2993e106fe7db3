// Package shell wraps the external shell interpreter used to validate
// script syntax. The exec function is injectable so tests never spawn a
// real shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/go-logr/logr"

	"github.com/autocommit-tools/setupcheck/internal/log"
)

// DefaultInterpreter is the command used for syntax validation runs.
const DefaultInterpreter = "bash"

func New(cmdContext execContext) *tool {
	engine := tool{interpreter: DefaultInterpreter, cmdContext: cmdContext}
	return &engine
}

// WithInterpreter overrides the interpreter binary, e.g. "sh".
func (t *tool) WithInterpreter(interpreter string) *tool {
	if interpreter != "" {
		t.interpreter = interpreter
	}
	return t
}

type tool struct {
	interpreter string
	cmdContext  execContext
}

// Define a type that is the signature of the exec.Command function.
// This allows us to override that function with our own for
// testing purposes. This type is only used directly in the New() function.
type execContext = func(name string, arg ...string) *exec.Cmd

// SyntaxReport carries the outcome of a single syntax validation run.
type SyntaxReport struct {
	Valid  bool
	Stdout string
	Stderr string
}

// CheckSyntax runs the interpreter in no-execute mode (-n) against
// scriptPath. A non-zero exit is a deterministic syntax failure, not an
// error; errors are reserved for the interpreter being unavailable or
// failing to launch.
func (t tool) CheckSyntax(ctx context.Context, scriptPath string) (*SyntaxReport, error) {
	logger := logr.FromContextOrDiscard(ctx)

	cmd := t.cmdContext(t.interpreter, "-n", scriptPath)
	logger.V(log.DBG).Info("validating shell syntax", "args", cmd.Args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %s: %v", t.interpreter, err)
		}

		logger.V(log.DBG).Info("syntax validation reported errors", "stderr", stderr.String())
		return &SyntaxReport{
			Valid:  false,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}, nil
	}

	return &SyntaxReport{
		Valid:  true,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}
