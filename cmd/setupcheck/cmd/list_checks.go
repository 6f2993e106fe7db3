package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autocommit-tools/setupcheck/internal/engine"
)

func listChecksCmd() *cobra.Command {
	listChecksCmd := &cobra.Command{
		Use:   "list-checks",
		Short: "List all checks that will be executed for each policy",
		Long:  "This command will list all checks that setupcheck runs against a target file by policy type",
		Run:   listChecksRunFunc,
	}
	return listChecksCmd
}

// listChecksRunFunc binds printChecks to cobra's Run function
// definition, passing the cobra command's output as an io.Writer.
func listChecksRunFunc(cmd *cobra.Command, args []string) {
	printChecks(cmd.OutOrStdout())
}

// printChecks writes the formatted check list output to w.
func printChecks(w io.Writer) {
	fmt.Fprintln(w, "These are the available checks for each policy:")
	fmt.Fprintln(w, formattedPolicyBlock("Script", engine.ScriptPolicy(context.TODO()), "invoked on the auto-commit shell script"))
	fmt.Fprintln(w, formattedPolicyBlock("Workflow", engine.WorkflowPolicy(context.TODO()), "invoked on the scheduling workflow file"))
}

// formattedPolicyBlock accepts information about the checklist
// and formats it for output.
func formattedPolicyBlock(policyName string, checkList []string, desc string) string {
	title := fmt.Sprintf("[%s Policy]: %s", policyName, desc) // the name in brackets
	list := formatList(checkList)

	return strings.Join([]string{title, list}, "\n")
}

// formatList returns list as a hyphen-prefixed, newline delimited string.
func formatList(list []string) string {
	var s string
	for _, v := range list {
		s += dashPrefix(v) + "\n"
	}

	return s
}

// dashPrefix prefixes string s with a hyphen.
func dashPrefix(s string) string {
	return fmt.Sprintf("- %s", s)
}
