package script

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

// stageAllMarker is matched literally. Substring probing is intentionally
// naive: the script is opaque text, never parsed as shell.
const stageAllMarker = "git add -A"

var _ check.Check = &StagesAllChangesCheck{}

// StagesAllChangesCheck evaluates that the script stages the entire working
// tree before committing.
type StagesAllChangesCheck struct{}

func (p *StagesAllChangesCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(stageAllMarker)), nil
}

func (p *StagesAllChangesCheck) Name() string {
	return "StagesAllChanges"
}

func (p *StagesAllChangesCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the script stages all changes with 'git add -A'.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *StagesAllChangesCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check StagesAllChanges encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add a 'git add -A' invocation to the script so that every pending change is staged.",
	}
}
