package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dialogtree/internal/config"
	"github.com/spf13/cobra"
)

// contentArg marks commands whose optional positional argument is the content path.
const contentArg = "content-arg"

// cfg is resolved in PersistentPreRunE: .env and DIALOGTREE_* first, explicit flags on top.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "dialogtree",
	Short: "dialogtree walks a branching dialog one numbered choice at a time",
	Long: `dialogtree displays the text of the current dialog node with its numbered options
and moves to the node behind the option you pick. Content can come from the built-in
sample, a YAML/JSON file, a directory of markdown files or a SQLite database.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()
	pf := rootCmd.PersistentFlags()

	pf.String("env-file", ".env", "Dotenv file with DIALOGTREE_* settings (ignored if missing)")
	pf.StringP("content", "c", "", "Content path: YAML/JSON file, markdown directory or SQLite database (default: built-in sample)")
	pf.String("source", "", "Content source: memory, file, loam or sqlite (default: inferred from --content)")
	pf.String("start", "", "Start node ID (default: declared by the content, else d0)")
	pf.String("state", defaults.StateBackend, "Checkpoint backend: none, memory, file or redis")
	pf.StringP("session", "s", "", "Session ID for checkpoints (default: generated)")
	pf.String("state-dir", defaults.StateDir, "Directory for file checkpoints")
	pf.String("redis-addr", defaults.RedisAddr, "Redis address for checkpoints")
	pf.String("redis-password", "", "Redis password")
	pf.Int("redis-db", defaults.RedisDB, "Redis database number")
	pf.Duration("session-ttl", defaults.SessionTTL, "Expire redis checkpoints after this long (0 = never)")
	pf.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
}

func resolveConfig(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")

	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	setString := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}

	setString("content", &loaded.ContentPath)
	if _, ok := cmd.Annotations[contentArg]; ok && len(args) > 0 && !flags.Changed("content") {
		loaded.ContentPath = args[0]
	}
	setString("source", &loaded.Source)
	setString("start", &loaded.StartNode)
	setString("state", &loaded.StateBackend)
	setString("session", &loaded.SessionID)
	setString("state-dir", &loaded.StateDir)
	setString("redis-addr", &loaded.RedisAddr)
	setString("redis-password", &loaded.RedisPassword)
	setString("log-level", &loaded.LogLevel)
	if flags.Changed("redis-db") {
		loaded.RedisDB, _ = flags.GetInt("redis-db")
	}
	if flags.Changed("session-ttl") {
		loaded.SessionTTL, _ = flags.GetDuration("session-ttl")
	}

	// run-only flags
	setBool("json", &loaded.JSON)
	setBool("markdown", &loaded.Markdown)
	setBool("fresh", &loaded.Fresh)
	if flags.Lookup("metrics-addr") != nil {
		setString("metrics-addr", &loaded.MetricsAddr)
	}

	cfg = loaded
	return cfg.Validate()
}
