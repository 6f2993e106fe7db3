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
	"github.com/autocommit-tools/setupcheck/script"
	"github.com/autocommit-tools/setupcheck/version"
)

func checkScriptCmd(runverification runVerification) *cobra.Command {
	checkScriptCmd := &cobra.Command{
		Use:     "script [path]",
		Short:   "Run checks for the auto-commit shell script",
		Long:    "This command will run the verification checks for the auto-commit shell script.",
		Args:    cobra.MaximumNArgs(1),
		Example: fmt.Sprintf("  %s", "setupcheck check script scripts/auto-commit.sh"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkScriptRunE(cmd, args, runverification)
		},
	}

	flags := checkScriptCmd.Flags()

	viper := viper.Instance()
	flags.String("interpreter", "", "Shell binary used for syntax validation. Defaults to bash. (env: SCHK_INTERPRETER)")
	_ = viper.BindPFlag("interpreter", flags.Lookup("interpreter"))

	return checkScriptCmd
}

// checkScriptRunE executes checkScript using the user args to inform the execution.
func checkScriptRunE(cmd *cobra.Command, args []string, runverification runVerification) error {
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

	scriptPath := cfg.ScriptPath
	if len(args) == 1 {
		scriptPath = args[0]
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

	checkscript := script.NewCheck(scriptPath,
		script.WithInterpreter(viper.Instance().GetString("interpreter")),
	)

	cmd.SilenceUsage = true

	results, err := runverification(
		ctx,
		checkscript.Run,
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
