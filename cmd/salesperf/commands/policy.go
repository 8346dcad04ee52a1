package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonny/salesperf/internal/policyconfig"
)

// policyCmd groups report policy helpers
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Report policy tools",
}

var (
	policyValidateCmd = &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a policy file and print warnings",
		Args:  cobra.ExactArgs(1),
		RunE:  runPolicyValidate,
	}

	policyHashCmd = &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the canonical SHA256 of a policy",
		Args:  cobra.ExactArgs(1),
		RunE:  runPolicyHash,
	}

	policyDefaultCmd = &cobra.Command{
		Use:   "default",
		Short: "Print the default policy as YAML",
		Args:  cobra.NoArgs,
		RunE:  runPolicyDefault,
	}
)

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.AddCommand(policyValidateCmd, policyHashCmd, policyDefaultCmd)
}

func runPolicyValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	policy, _, err := policyconfig.Load(args[0])
	if err != nil {
		PrintError(out, err.Error())
		return err
	}

	warnings := policyconfig.Warn(policy)
	for _, w := range warnings {
		PrintWarning(out, fmt.Sprintf("[%s] %s", w.Code, w.Message))
	}

	PrintSuccess(out, fmt.Sprintf("policy %s is valid (%d warnings)", policy.Meta.PolicyID, len(warnings)))
	return nil
}

func runPolicyHash(cmd *cobra.Command, args []string) error {
	policy, _, err := policyconfig.Load(args[0])
	if err != nil {
		return err
	}

	hash, err := policyconfig.Hash(policy)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runPolicyDefault(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(policyconfig.Default())
}
