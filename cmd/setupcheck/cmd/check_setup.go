package cmd

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/autocommit-tools/setupcheck/artifacts"
	setupcheckerr "github.com/autocommit-tools/setupcheck/errors"
	"github.com/autocommit-tools/setupcheck/internal/cli"
	"github.com/autocommit-tools/setupcheck/internal/formatters"
	"github.com/autocommit-tools/setupcheck/internal/log"
	"github.com/autocommit-tools/setupcheck/internal/runtime"
	"github.com/autocommit-tools/setupcheck/internal/viper"
	"github.com/autocommit-tools/setupcheck/script"
	"github.com/autocommit-tools/setupcheck/verification"
	"github.com/autocommit-tools/setupcheck/version"
	"github.com/autocommit-tools/setupcheck/workflow"
)

func checkSetupCmd(runverification runVerification) *cobra.Command {
	checkSetupCmd := &cobra.Command{
		Use:     "setup",
		Short:   "Run checks for the whole auto-commit setup",
		Long:    "This command will run the script and workflow verification checks in a fixed order and produce one merged report.",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("  %s", "setupcheck check setup --script scripts/auto-commit.sh --workflow .github/workflows/auto-commit.yml"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkSetupRunE(cmd, runverification)
		},
	}

	flags := checkSetupCmd.Flags()

	viper := viper.Instance()
	flags.String("script", "", "Path to the auto-commit shell script. (env: SCHK_SCRIPT)")
	_ = viper.BindPFlag("script", flags.Lookup("script"))

	flags.String("workflow", "", "Path to the scheduling workflow file. (env: SCHK_WORKFLOW)")
	_ = viper.BindPFlag("workflow", flags.Lookup("workflow"))

	flags.String("interpreter", "", "Shell binary used for syntax validation. Defaults to bash. (env: SCHK_INTERPRETER)")
	_ = viper.BindPFlag("interpreter", flags.Lookup("interpreter"))

	return checkSetupCmd
}

// checkSetupRunE executes both batteries in a fixed order, merging their
// results into a single report.
func checkSetupRunE(cmd *cobra.Command, runverification runVerification) error {
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

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			logger.V(log.DBG).Info("flag override", "flag", f.Name, "value", f.Value.String())
		}
	})

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

	checkscript := script.NewCheck(cfg.ScriptPath,
		script.WithInterpreter(viper.Instance().GetString("interpreter")),
	)
	checkworkflow := workflow.NewCheck(cfg.WorkflowPath)

	runChecks := func(ctx context.Context) (verification.Results, error) {
		scriptResults, err := checkscript.Run(ctx)
		if err != nil {
			return verification.Results{}, err
		}

		workflowResults, err := checkworkflow.Run(ctx)
		if err != nil {
			return verification.Results{}, err
		}

		return verification.Merge(scriptResults, workflowResults), nil
	}

	cmd.SilenceUsage = true

	results, err := runverification(
		ctx,
		runChecks,
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
