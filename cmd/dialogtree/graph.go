package main

import (
	"github.com/aretw0/dialogtree/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [content]",
	Short: "Export the dialog as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) of every node and option.
With --session the checkpointed node is highlighted. Nothing is validated:
options pointing at missing nodes are drawn as they are.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{contentArg: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RenderGraph(cmd.Context(), cfg, cfg.SessionID, cmd.OutOrStdout())
	},
}

var nodesCmd = &cobra.Command{
	Use:         "nodes [content]",
	Short:       "List the nodes of the dialog",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{contentArg: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListNodes(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(nodesCmd)
}
