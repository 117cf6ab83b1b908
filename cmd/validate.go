package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/promptgen/internal/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate [registry]",
	Short: "Validate a topic registry without writing any files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(args[0])
		if err != nil {
			return err
		}
		for _, sec := range reg.Sections() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %q  %d topics\n", sec.Slug, sec.Name, sec.Topics)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registry OK: %d topics in %d sections\n", reg.Len(), len(reg.Sections()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
