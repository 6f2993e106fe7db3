package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/autocommit-tools/setupcheck/artifacts"
	setupcheckerr "github.com/autocommit-tools/setupcheck/errors"
	"github.com/autocommit-tools/setupcheck/internal/cli"
	"github.com/autocommit-tools/setupcheck/internal/formatters"
	"github.com/autocommit-tools/setupcheck/internal/runtime"
	"github.com/autocommit-tools/setupcheck/internal/viper"
	"github.com/autocommit-tools/setupcheck/version"
	"github.com/autocommit-tools/setupcheck/workflow"
)

func checkWorkflowCmd(runverification runVerification) *cobra.Command {
	checkWorkflowCmd := &cobra.Command{
		Use:     "workflow [path]",
		Short:   "Run checks for the scheduling workflow",
		Long:    "This command will run the verification checks for the workflow file that schedules the automation.",
		Args:    cobra.MaximumNArgs(1),
		Example: fmt.Sprintf("  %s", "setupcheck check workflow .github/workflows/auto-commit.yml"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkWorkflowRunE(cmd, args, runverification)
		},
	}

	return checkWorkflowCmd
}

// checkWorkflowRunE executes checkWorkflow using the user args to inform the execution.
func checkWorkflowRunE(cmd *cobra.Command, args []string, runverification runVerification) error {
	ctx := cmd.Context()
	logger, err := logr.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("invalid logging configuration")
	}
	logger.Info("verification library version", "version", version.Version.String())

	// Render the Viper configuration as a runtime.Config
	cfg, err := runtime.NewConfigFrom(*viper.Instance())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	workflowPath := cfg.WorkflowPath
	if len(args) == 1 {
		workflowPath = args[0]
	}

	artifactsWriter, err := artifacts.NewFilesystemWriter(artifacts.WithDirectory(cfg.Artifacts))
	if err != nil {
		return err
	}

	// Add the artifact writer to the context for use during the run.
	ctx = artifacts.ContextWithWriter(ctx, artifactsWriter)

	formatter, err := formatters.NewByName(cfg.ResponseFormat)
	if err != nil {
		return err
	}

	checkworkflow := workflow.NewCheck(workflowPath)

	cmd.SilenceUsage = true

	results, err := runverification(
		ctx,
		checkworkflow.Run,
		cli.CheckConfig{IncludeJUnitResults: cfg.WriteJUnit},
		formatter,
		&runtime.ResultWriterFile{},
	)
	if err != nil {
		return err
	}

	if !results.PassedOverall {
		return setupcheckerr.ErrVerificationFailed
	}

	return nil
}
