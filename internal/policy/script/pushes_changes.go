package script

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const pushMarker = "git push"

var _ check.Check = &PushesChangesCheck{}

// PushesChangesCheck evaluates that the script publishes the commit to the
// remote.
type PushesChangesCheck struct{}

func (p *PushesChangesCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(pushMarker)), nil
}

func (p *PushesChangesCheck) Name() string {
	return "PushesChanges"
}

func (p *PushesChangesCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the script publishes commits with 'git push'.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *PushesChangesCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check PushesChanges encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add a 'git push' invocation so commits created by the automation reach the remote.",
	}
}
