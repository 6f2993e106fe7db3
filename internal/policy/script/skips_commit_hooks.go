package script

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const noVerifyMarker = "--no-verify"

var _ check.Check = &SkipsCommitHooksCheck{}

// SkipsCommitHooksCheck evaluates that the script bypasses commit hooks.
// Hook execution inside an unattended automation run tends to hang or fail
// in ways nobody is around to see, so the setup is expected to opt out.
type SkipsCommitHooksCheck struct{}

func (p *SkipsCommitHooksCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(noVerifyMarker)), nil
}

func (p *SkipsCommitHooksCheck) Name() string {
	return "SkipsCommitHooks"
}

func (p *SkipsCommitHooksCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the script bypasses git hooks with '--no-verify'.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *SkipsCommitHooksCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check SkipsCommitHooks encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Pass --no-verify to the git invocations so local hooks cannot block the unattended run.",
	}
}
