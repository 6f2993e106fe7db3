package workflow

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const entrypointMarker = "node dist/index.js"

var _ check.Check = &RunsBundledEntrypointCheck{}

// RunsBundledEntrypointCheck evaluates that the workflow runs the bundled
// automation entrypoint rather than some ad-hoc command.
type RunsBundledEntrypointCheck struct{}

func (p *RunsBundledEntrypointCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(entrypointMarker)), nil
}

func (p *RunsBundledEntrypointCheck) Name() string {
	return "RunsBundledEntrypoint"
}

func (p *RunsBundledEntrypointCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the workflow invokes the bundled entrypoint 'node dist/index.js'.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *RunsBundledEntrypointCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check RunsBundledEntrypoint encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add a step that runs 'node dist/index.js' so the workflow executes the bundled automation.",
	}
}
