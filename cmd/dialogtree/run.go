package main

import (
	"github.com/aretw0/dialogtree/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [content]",
	Short: "Run the interactive dialog",
	Long: `Starts at the start node and reads one option number per line.
Type 'exit' or 'quit' (or close the input) to leave.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{contentArg: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.RunSession(sigCtx, cli.RunOptions{
			Config: cfg,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("markdown", true, "Render node text as markdown on a terminal")
	runCmd.Flags().Bool("fresh", false, "Discard the session checkpoint before starting")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")

	// 'dialogtree' alone behaves like 'dialogtree run'.
	rootCmd.Args = runCmd.Args
	rootCmd.Annotations = runCmd.Annotations
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
