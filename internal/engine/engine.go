// Package engine executes a policy's battery of checks against a single
// target file and collects the results.
package engine

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/log"
	"github.com/autocommit-tools/setupcheck/internal/policy"
	scriptpol "github.com/autocommit-tools/setupcheck/internal/policy/script"
	workflowpol "github.com/autocommit-tools/setupcheck/internal/policy/workflow"
	"github.com/autocommit-tools/setupcheck/internal/shell"
	"github.com/autocommit-tools/setupcheck/internal/target"
	"github.com/autocommit-tools/setupcheck/verification"
)

// New creates a new setupEngine from the passed params.
func New(ctx context.Context,
	targetPath string,
	p policy.Policy,
	checks []check.Check,
	fs afero.Fs,
) (setupEngine, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return setupEngine{
		targetPath: targetPath,
		policy:     p,
		checks:     checks,
		fs:         fs,
	}, nil
}

// setupEngine resolves the target file once, then runs every check in order.
// Checks never run concurrently, and no check is retried: a failure is
// deterministic.
type setupEngine struct {
	// targetPath is the file under test.
	targetPath string
	// policy selects which battery this engine is running.
	policy policy.Policy
	// checks is an array of all checks to be executed against
	// the target provided.
	checks []check.Check
	// fs is the filesystem the target is resolved against.
	fs afero.Fs

	targetRef target.Reference
	results   verification.Results
}

func (e *setupEngine) ExecuteChecks(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("target file", "path", e.targetPath, "policy", e.policy)

	// create the scratch dir used to validate that the script can be
	// installed and marked executable
	scratchDir, err := afero.TempDir(e.fs, "", check.ScratchDirPrefix)
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %v", err)
	}
	logger.V(log.DBG).Info("created scratch directory", "path", scratchDir)
	defer func() {
		if err := e.fs.RemoveAll(scratchDir); err != nil {
			logger.Error(err, "unable to clean up scratch directory", "scratchDir", scratchDir)
		}
	}()

	exists, err := afero.Exists(e.fs, e.targetPath)
	if err != nil {
		return fmt.Errorf("could not stat target file: %v", err)
	}

	var contents []byte
	if exists {
		contents, err = afero.ReadFile(e.fs, e.targetPath)
		if err != nil {
			return fmt.Errorf("could not read target file: %v", err)
		}
	}

	e.targetRef = target.Reference{
		Path:       e.targetPath,
		Contents:   contents,
		ScratchDir: scratchDir,
		FS:         e.fs,
	}

	if exists && e.policy == policy.PolicyScript {
		if err := e.installScratchCopy(ctx); err != nil {
			return fmt.Errorf("could not install script into scratch directory: %v", err)
		}
	}

	// execute checks
	logger.V(log.DBG).Info("executing checks")
	for _, c := range e.checks {
		logger.V(log.DBG).Info("running check", "check", c.Name())

		// run the validation
		checkStartTime := time.Now()
		checkPassed, err := c.Validate(ctx, e.targetRef)
		checkElapsedTime := time.Since(checkStartTime)

		if err != nil {
			logger.WithValues("result", "ERROR", "err", err.Error()).Info("check completed", "check", c.Name())
			result := verification.Result{Check: c, ElapsedTime: checkElapsedTime}
			e.results.Errors = append(e.results.Errors, *result.WithError(err))
			if isGating(c) {
				logger.Info("gating check did not pass, skipping remaining checks", "check", c.Name())
				break
			}
			continue
		}

		if !checkPassed {
			logger.WithValues("result", "FAILED").Info("check completed", "check", c.Name())
			e.results.Failed = append(e.results.Failed, verification.Result{Check: c, ElapsedTime: checkElapsedTime})
			if isGating(c) {
				logger.Info("gating check did not pass, skipping remaining checks", "check", c.Name())
				break
			}
			continue
		}

		logger.WithValues("result", "PASSED").Info("check completed", "check", c.Name())
		e.results.Passed = append(e.results.Passed, verification.Result{Check: c, ElapsedTime: checkElapsedTime})
	}

	e.results.PassedOverall = len(e.results.Errors) == 0 && len(e.results.Failed) == 0

	switch e.policy {
	case policy.PolicyScript:
		e.results.TestedScript = e.targetPath
	case policy.PolicyWorkflow:
		e.results.TestedWorkflow = e.targetPath
	}

	return nil
}

// installScratchCopy copies the script into the scratch directory and marks
// the copy executable, proving the file can be installed the way the
// scheduled run would install it.
func (e *setupEngine) installScratchCopy(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)

	scratchCopy := filepath.Join(e.targetRef.ScratchDir, filepath.Base(e.targetPath))
	if err := afero.WriteFile(e.fs, scratchCopy, e.targetRef.Contents, 0o644); err != nil {
		return fmt.Errorf("could not copy script: %v", err)
	}

	if err := e.fs.Chmod(scratchCopy, 0o755); err != nil {
		return fmt.Errorf("could not mark script copy executable: %v", err)
	}

	logger.V(log.DBG).Info("installed executable scratch copy", "path", scratchCopy)
	return nil
}

// Results will return the results of check execution.
func (e *setupEngine) Results(ctx context.Context) verification.Results {
	return e.results
}

func isGating(c check.Check) bool {
	if g, ok := c.(check.Gate); ok {
		return g.Gating()
	}
	return false
}

// ScriptCheckConfig contains configuration relevant to an individual check's execution.
type ScriptCheckConfig struct {
	// Interpreter overrides the shell used for syntax validation.
	Interpreter string
}

// InitializeScriptChecks returns the appropriate checks for policy p given cfg.
func InitializeScriptChecks(ctx context.Context, p policy.Policy, cfg ScriptCheckConfig) ([]check.Check, error) {
	switch p {
	case policy.PolicyScript:
		return []check.Check{
			&scriptpol.ScriptExistsCheck{},
			&scriptpol.StagesAllChangesCheck{},
			&scriptpol.CreatesCommitCheck{},
			&scriptpol.PushesChangesCheck{},
			&scriptpol.SkipsCommitHooksCheck{},
			scriptpol.NewHasValidShellSyntaxCheck(shell.New(exec.Command).WithInterpreter(cfg.Interpreter)),
		}, nil
	}

	return nil, fmt.Errorf("provided script policy %s is unknown", p)
}

// WorkflowCheckConfig contains configuration relevant to an individual check's execution.
type WorkflowCheckConfig struct{}

// InitializeWorkflowChecks returns the appropriate checks for policy p given cfg.
func InitializeWorkflowChecks(ctx context.Context, p policy.Policy, cfg WorkflowCheckConfig) ([]check.Check, error) {
	switch p {
	case policy.PolicyWorkflow:
		return []check.Check{
			&workflowpol.WorkflowExistsCheck{},
			&workflowpol.HasScheduleTriggerCheck{},
			&workflowpol.HasCronExpressionCheck{},
			&workflowpol.HasManualDispatchCheck{},
			&workflowpol.RunsBundledEntrypointCheck{},
			&workflowpol.PassesWorkflowLintCheck{},
		}, nil
	}

	return nil, fmt.Errorf("provided workflow policy %s is unknown", p)
}

// ScriptPolicy returns the names of the checks in the script battery.
func ScriptPolicy(ctx context.Context) []string {
	checks, err := InitializeScriptChecks(ctx, policy.PolicyScript, ScriptCheckConfig{})
	if err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "could not initialize script checks")
		return []string{}
	}

	return checkNames(checks)
}

// WorkflowPolicy returns the names of the checks in the workflow battery.
func WorkflowPolicy(ctx context.Context) []string {
	checks, err := InitializeWorkflowChecks(ctx, policy.PolicyWorkflow, WorkflowCheckConfig{})
	if err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "could not initialize workflow checks")
		return []string{}
	}

	return checkNames(checks)
}

func checkNames(checks []check.Check) []string {
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}

	return names
}
