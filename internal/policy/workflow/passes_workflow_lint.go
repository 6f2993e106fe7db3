package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/rhysd/actionlint"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/log"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ check.Check = &PassesWorkflowLintCheck{}

// PassesWorkflowLintCheck evaluates the workflow with actionlint. Substring
// probes catch a missing trigger, but only a real linter catches a schedule
// block with a malformed cron expression or an undefined job reference.
type PassesWorkflowLintCheck struct{}

func (p *PassesWorkflowLintCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	logger := logr.FromContextOrDiscard(ctx)

	linter, err := actionlint.NewLinter(io.Discard, &actionlint.LinterOptions{})
	if err != nil {
		return false, fmt.Errorf("could not initialize workflow linter: %v", err)
	}

	findings, err := linter.Lint(ref.Path, ref.Contents, nil)
	if err != nil {
		return false, fmt.Errorf("could not lint workflow: %v", err)
	}

	for _, finding := range findings {
		logger.V(log.DBG).Info("workflow lint finding",
			"message", finding.Message,
			"line", finding.Line,
			"column", finding.Column,
			"kind", finding.Kind,
		)
	}

	return len(findings) == 0, nil
}

func (p *PassesWorkflowLintCheck) Name() string {
	return "PassesWorkflowLint"
}

func (p *PassesWorkflowLintCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the workflow passes actionlint with no findings.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *PassesWorkflowLintCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check PassesWorkflowLint encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Run actionlint against the workflow and resolve the reported findings.",
	}
}
