// Package script exposes the script battery as a library call.
package script

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	setupcheckerr "github.com/autocommit-tools/setupcheck/errors"
	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/engine"
	"github.com/autocommit-tools/setupcheck/internal/policy"
	"github.com/autocommit-tools/setupcheck/verification"
)

type Option = func(*scriptCheck)

// NewCheck is a check that runs setupcheck's script policy against the
// auto-commit shell script at path.
func NewCheck(path string, opts ...Option) *scriptCheck {
	c := &scriptCheck{
		path: path,
		fs:   afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run executes the check and returns the results. Callers should add a
// relevant ArtifactWriter to the context if they wish to work with artifact
// files written during the run.
func (c *scriptCheck) Run(ctx context.Context) (verification.Results, error) {
	if err := c.resolve(ctx); err != nil {
		return verification.Results{}, err
	}

	eng, err := engine.New(ctx, c.path, policy.PolicyScript, c.checks, c.fs)
	if err != nil {
		return verification.Results{}, err
	}

	if err := eng.ExecuteChecks(ctx); err != nil {
		return verification.Results{}, err
	}

	return eng.Results(ctx), nil
}

func (c *scriptCheck) resolve(ctx context.Context) error {
	if c.resolved {
		return nil
	}

	if c.path == "" {
		return setupcheckerr.ErrScriptPathEmpty
	}

	newChecks, err := engine.InitializeScriptChecks(ctx, policy.PolicyScript, engine.ScriptCheckConfig{
		Interpreter: c.interpreter,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", setupcheckerr.ErrCannotInitializeChecks, err)
	}
	c.checks = newChecks
	c.resolved = true

	return nil
}

// List the available script checks.
func (c *scriptCheck) List(ctx context.Context) (policy.Policy, []check.Check, error) {
	return policy.PolicyScript, c.checks, c.resolve(ctx)
}

// WithFileSystem overrides the filesystem the script is resolved against.
// Useful for testing against an in-memory filesystem.
func WithFileSystem(fs afero.Fs) Option {
	return func(sc *scriptCheck) {
		if fs != nil {
			sc.fs = fs
		}
	}
}

// WithInterpreter overrides the shell binary used for syntax validation,
// e.g. "sh".
func WithInterpreter(interpreter string) Option {
	return func(sc *scriptCheck) {
		sc.interpreter = interpreter
	}
}

type scriptCheck struct {
	path        string
	interpreter string
	fs          afero.Fs
	checks      []check.Check
	resolved    bool
}
