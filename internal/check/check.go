// Package check defines the abstractions shared by all setupcheck checks.
package check

import (
	"context"

	"github.com/autocommit-tools/setupcheck/internal/target"
)

// Check as an interface containing all methods necessary
// to use and identify a given check.
type Check interface {
	// Validate checks whether the target complies with the check.
	Validate(ctx context.Context, ref target.Reference) (result bool, err error)
	// Name returns the name of the check.
	Name() string
	// Metadata returns the check's metadata.
	Metadata() Metadata
	// Help return the check's help text.
	Help() HelpText
}

// Gate is implemented by checks whose failure makes the remaining checks for
// the same target meaningless. The engine stops executing a target's battery
// when a gating check does not pass.
type Gate interface {
	Gating() bool
}

// Metadata contains useful information regarding the check.
type Metadata struct {
	Description      string `json:"description" xml:"description"`
	Level            string `json:"level" xml:"level"`
	KnowledgeBaseURL string `json:"knowledge_base_url,omitempty" xml:"knowledgeBaseURL"`
	CheckURL         string `json:"check_url,omitempty" xml:"checkURL"`
}

// HelpText is the help message associated with any given check
type HelpText struct {
	Message    string `json:"message" xml:"message"`
	Suggestion string `json:"suggestion" xml:"suggestion"`
}
