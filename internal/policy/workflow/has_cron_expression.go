package workflow

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

const cronMarker = "cron:"

var _ check.Check = &HasCronExpressionCheck{}

// HasCronExpressionCheck evaluates that the schedule trigger carries a cron
// expression.
type HasCronExpressionCheck struct{}

func (p *HasCronExpressionCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(cronMarker)), nil
}

func (p *HasCronExpressionCheck) Name() string {
	return "HasCronExpression"
}

func (p *HasCronExpressionCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the workflow schedule carries a 'cron:' expression.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *HasCronExpressionCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check HasCronExpression encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Give the 'schedule:' trigger a 'cron:' entry describing when the automation should run.",
	}
}
