package script

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const commitMarker = "git commit"

var _ check.Check = &CreatesCommitCheck{}

// CreatesCommitCheck evaluates that the script creates a commit.
type CreatesCommitCheck struct{}

func (p *CreatesCommitCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(commitMarker)), nil
}

func (p *CreatesCommitCheck) Name() string {
	return "CreatesCommit"
}

func (p *CreatesCommitCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the script records staged changes with 'git commit'.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *CreatesCommitCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check CreatesCommit encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add a 'git commit' invocation to the script so staged changes are recorded.",
	}
}
