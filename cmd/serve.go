package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/promptgen/internal/mcptool"
	"github.com/agentic-research/promptgen/internal/prompt"
	"github.com/agentic-research/promptgen/internal/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve [registry]",
	Short: "Serve the registry over MCP (stdio) for the text-generation tool",
	Long: `serve exposes list_topics and render_prompt as MCP tools on stdin/stdout,
so an MCP-capable text-generation client can pull article prompts directly
instead of reading generated files.`,
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

		return mcptool.ServeStdio(mcptool.NewServer(reg, tmpl, version))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
