package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/compliscore/internal/scorer"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect and scaffold scoring policies",
}

var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective scoring policy as YAML",
	Long: `Print the scoring policy that the score, report, chart, and serve
commands would use: configuration defaults, config file and environment
overrides, and an optional --policy file overlay.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		policyPath, _ := cmd.Flags().GetString("policy")

		policy, err := effectivePolicy(cfg.Policy, policyPath)
		if err != nil {
			return err
		}

		b, err := yaml.Marshal(policy)
		if err != nil {
			return eris.Wrap(err, "policy: marshal")
		}
		fmt.Print(string(b))
		return nil
	},
}

var policyInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default policy file to edit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputPath, _ := cmd.Flags().GetString("output")

		if _, err := os.Stat(outputPath); err == nil {
			return eris.Errorf("policy: %s already exists", outputPath)
		}

		b, err := yaml.Marshal(scorer.DefaultPolicy())
		if err != nil {
			return eris.Wrap(err, "policy: marshal defaults")
		}
		if err := os.WriteFile(outputPath, b, 0o644); err != nil {
			return eris.Wrapf(err, "policy: write %s", outputPath)
		}

		fmt.Printf("Wrote default policy to %s\n", outputPath)
		return nil
	},
}

func init() {
	policyShowCmd.Flags().String("policy", "", "policy YAML file to overlay before printing")
	policyInitCmd.Flags().String("output", "policy.yaml", "path for the generated policy file")

	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policyInitCmd)
	rootCmd.AddCommand(policyCmd)
}
