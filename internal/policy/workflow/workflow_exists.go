package workflow

import (
	"context"

	"github.com/spf13/afero"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ check.Check = &WorkflowExistsCheck{}

// WorkflowExistsCheck evaluates that the scheduling workflow is present at
// the expected path. It gates the rest of the workflow battery.
type WorkflowExistsCheck struct{}

func (p *WorkflowExistsCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return afero.Exists(ref.FS, ref.Path)
}

func (p *WorkflowExistsCheck) Gating() bool {
	return true
}

func (p *WorkflowExistsCheck) Name() string {
	return "WorkflowExists"
}

func (p *WorkflowExistsCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the scheduling workflow file is present at the configured path.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *WorkflowExistsCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check WorkflowExists encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Place the workflow file under .github/workflows, or point setupcheck at it with the --workflow flag.",
	}
}
