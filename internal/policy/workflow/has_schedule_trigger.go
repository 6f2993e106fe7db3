package workflow

import (
	"bytes"
	"context"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/target"
)

// Markers are matched literally against the raw workflow text, mirroring the
// substring probes used for the script battery.
const scheduleMarker = "schedule:"

var _ check.Check = &HasScheduleTriggerCheck{}

// HasScheduleTriggerCheck evaluates that the workflow declares a schedule
// trigger.
type HasScheduleTriggerCheck struct{}

func (p *HasScheduleTriggerCheck) Validate(ctx context.Context, ref target.Reference) (bool, error) {
	return bytes.Contains(ref.Contents, []byte(scheduleMarker)), nil
}

func (p *HasScheduleTriggerCheck) Name() string {
	return "HasScheduleTrigger"
}

func (p *HasScheduleTriggerCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description:      "Checking if the workflow declares a 'schedule:' trigger.",
		Level:            "best",
		KnowledgeBaseURL: checkDocumentationURL,
		CheckURL:         checkDocumentationURL,
	}
}

func (p *HasScheduleTriggerCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check HasScheduleTrigger encountered an error. Please review the setupcheck.log file for more information.",
		Suggestion: "Add a 'schedule:' block to the workflow's 'on:' section so the automation runs unattended.",
	}
}
