package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/promptgen/internal/generate"
	"github.com/agentic-research/promptgen/internal/prompt"
	"github.com/agentic-research/promptgen/internal/registry"
)

// version is stamped by the release build; "dev" otherwise.
var version = "dev"

var (
	basePath     string
	failFast     bool
	templatePath string
	reportPath   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&templatePath, "template", "t", "", "Path to a custom prompt template")
	rootCmd.Flags().StringVarP(&basePath, "base", "b", ".", "Root folder for generated output")
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first topic failure")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON run report to this path")
}

var rootCmd = &cobra.Command{
	Use:   "promptgen [registry]",
	Short: "Generate article prompt files from a topic registry",
	Long: `promptgen reads a topic registry (.hcl, .json or .yaml) and writes one
prompt Markdown file per topic at {base}/{sectionSlug}/{topicIndex}-{topicSlug}.md.
Reruns are deterministic: the same registry produces byte-identical output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(args[0])
		if err != nil {
			return err
		}

		tmpl := prompt.DefaultTemplate
		if templatePath != "" {
			if tmpl, err = prompt.LoadTemplate(templatePath); err != nil {
				return err
			}
		}

		gen := generate.New(generate.Options{
			BasePath: basePath,
			FailFast: failFast,
			Template: tmpl,
			Out:      cmd.OutOrStdout(),
		})
		report, runErr := gen.Run(reg)

		if report != nil && reportPath != "" {
			if err := generate.WriteReport(reportPath, report); err != nil {
				return err
			}
		}
		if runErr != nil {
			return runErr
		}
		if report.Failed > 0 {
			return fmt.Errorf("%d of %d topics failed", report.Failed, len(report.Results))
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
