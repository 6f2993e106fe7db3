package check

var (
	DefaultScriptPath      = "scripts/auto-commit.sh"
	DefaultWorkflowPath    = ".github/workflows/auto-commit.yml"
	DefaultResultsFilename = "results"
	ScratchDirPrefix       = "setupcheck-scratch-"
)
