package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/autocommit-tools/setupcheck/internal/cli"
	"github.com/autocommit-tools/setupcheck/internal/formatters"
	"github.com/autocommit-tools/setupcheck/internal/viper"
	"github.com/autocommit-tools/setupcheck/verification"
)

// runVerification is introduced to make testing of the check commands
// possible; it has the same method signature as cli.RunVerification.
type runVerification func(context.Context, func(ctx context.Context) (verification.Results, error), cli.CheckConfig, formatters.ResponseFormatter, cli.ResultWriter) (verification.Results, error)

func checkCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run checks for an auto-commit script or workflow",
		Long:  "This command will allow you to execute the verification checks for the auto-commit shell script, the scheduling workflow, or the whole setup.",
	}

	viper := viper.Instance()
	checkCmd.PersistentFlags().String("artifacts", "", "Where check-specific artifacts will be written. (env: SCHK_ARTIFACTS)")
	_ = viper.BindPFlag("artifacts", checkCmd.PersistentFlags().Lookup("artifacts"))

	checkCmd.PersistentFlags().String("format", "", "The format for the check test results. Ex. summary, json, xml, yaml, junitxml. (env: SCHK_FORMAT)")
	_ = viper.BindPFlag("format", checkCmd.PersistentFlags().Lookup("format"))

	checkCmd.PersistentFlags().Bool("junit", false, "Write results to an additional JUnit XML artifact. (env: SCHK_JUNIT)")
	_ = viper.BindPFlag("junit", checkCmd.PersistentFlags().Lookup("junit"))

	checkCmd.AddCommand(checkScriptCmd(cli.RunVerification))
	checkCmd.AddCommand(checkWorkflowCmd(cli.RunVerification))
	checkCmd.AddCommand(checkSetupCmd(cli.RunVerification))

	return checkCmd
}
