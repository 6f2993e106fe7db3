package workflow

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const dispatchMarker = "workflow_dispatch:"

var _ check.Check = &HasManualDispatchCheck{}

// HasManualDispatchCheck evaluates that the workflow can also be triggered
// by hand, which is how operators re-run the automation after fixing a
// failed scheduled run.
type HasManualDispatchCheck struct{}

func (p *HasManualDispatchCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(dispatchMarker)), nil
}

func (p *HasManualDispatchCheck) Name() string {
	return "HasManualDispatch"
}

func (p *HasManualDispatchCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the workflow declares a 'workflow_dispatch:' trigger.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *HasManualDispatchCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check HasManualDispatch encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add 'workflow_dispatch:' to the workflow's 'on:' section so the run can be triggered manually.",
	}
}
