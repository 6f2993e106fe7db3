// Package workflow exposes the workflow battery as a library call.
package workflow

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

type Option = func(*workflowCheck)

// NewCheck is a check that runs setupcheck's workflow policy against the
// scheduling workflow file at path.
func NewCheck(path string, opts ...Option) *workflowCheck {
	c := &workflowCheck{
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
func (c *workflowCheck) Run(ctx context.Context) (verification.Results, error) {
	if err := c.resolve(ctx); err != nil {
		return verification.Results{}, err
	}

	eng, err := engine.New(ctx, c.path, policy.PolicyWorkflow, c.checks, c.fs)
	if err != nil {
		return verification.Results{}, err
	}

	if err := eng.ExecuteChecks(ctx); err != nil {
		return verification.Results{}, err
	}

	return eng.Results(ctx), nil
}

func (c *workflowCheck) resolve(ctx context.Context) error {
	if c.resolved {
		return nil
	}

	if c.path == "" {
		return setupcheckerr.ErrWorkflowPathEmpty
	}

	newChecks, err := engine.InitializeWorkflowChecks(ctx, policy.PolicyWorkflow, engine.WorkflowCheckConfig{})
	if err != nil {
		return fmt.Errorf("%w: %s", setupcheckerr.ErrCannotInitializeChecks, err)
	}
	c.checks = newChecks
	c.resolved = true

	return nil
}

// List the available workflow checks.
func (c *workflowCheck) List(ctx context.Context) (policy.Policy, []check.Check, error) {
	return policy.PolicyWorkflow, c.checks, c.resolve(ctx)
}

// WithFileSystem overrides the filesystem the workflow is resolved against.
// Useful for testing against an in-memory filesystem.
func WithFileSystem(fs afero.Fs) Option {
	return func(wc *workflowCheck) {
		if fs != nil {
			wc.fs = fs
		}
	}
}

type workflowCheck struct {
	path     string
	fs       afero.Fs
	checks   []check.Check
	resolved bool
}
