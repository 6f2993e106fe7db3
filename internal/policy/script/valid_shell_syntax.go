package script

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/shell"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

// syntaxValidator abstracts the shell interpreter wrapper so tests can
// substitute a fake.
type syntaxValidator interface {
	CheckSyntax(ctx context.Context, scriptPath string) (*shell.SyntaxReport, error)
}

func NewHasValidShellSyntaxCheck(validator syntaxValidator) *HasValidShellSyntaxCheck {
	return &HasValidShellSyntaxCheck{
		validator: validator,
	}
}

var _ check.Check = &HasValidShellSyntaxCheck{}

// HasValidShellSyntaxCheck evaluates that the script parses cleanly when the
// shell interpreter runs it in no-execute mode. A non-zero exit from the
// interpreter is a check failure; failing to launch the interpreter at all
// is a check error.
type HasValidShellSyntaxCheck struct {
	validator syntaxValidator
}

func (p *HasValidShellSyntaxCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	logger := logr.FromContextOrDiscard(ctx)

	report, err := p.validator.CheckSyntax(ctx, ref.Path)
	if err != nil {
		return false, fmt.Errorf("could not validate script syntax: %v", err)
	}

	if !report.Valid {
		logger.Info("script failed shell syntax validation", "stderr", report.Stderr)
	}

	return report.Valid, nil
}

func (p *HasValidShellSyntaxCheck) Name() string {
	return "HasValidShellSyntax"
}

func (p *HasValidShellSyntaxCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the script passes the shell interpreter's syntax validation (bash -n).",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *HasValidShellSyntaxCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check HasValidShellSyntax encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Run 'bash -n' against the script locally and fix the reported syntax errors.",
	}
}
