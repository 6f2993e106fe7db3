package script

import (
	"context"

	"github.com/spf13/afero"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ check.Check = &ScriptExistsCheck{}

// ScriptExistsCheck evaluates that the auto-commit script is present at the
// expected path. It gates the rest of the script battery: content and syntax
// checks are meaningless without a file to inspect.
type ScriptExistsCheck struct{}

func (p *ScriptExistsCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return afero.Exists(ref.FS, ref.Path)
}

func (p *ScriptExistsCheck) Gating() bool {
	return true
}

func (p *ScriptExistsCheck) Name() string {
	return "ScriptExists"
}

func (p *ScriptExistsCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the auto-commit script is present at the configured path.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *ScriptExistsCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check ScriptExists encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Place your auto-commit shell script at the configured path, or point setupcheck at it with the --script flag.",
	}
}
