// Command wellcoach is an interactive health and wellness coach backed by a
// chat model and web search.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/wellcoach"
	"github.com/hupe1980/wellcoach/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "wellcoach",
		Short:         "Dr. Wellness - your personal health & wellness coach",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(chatCmd(), searchCmd(), versionCmd())
	return root
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive coaching session",
		Long: `Start an interactive coaching session.

Commands inside the session:
  setup            create your wellness profile
  goals            view or add wellness goals
  complete <n>     mark goal n as completed
  track            log a daily wellness metric
  progress         view your wellness progress
  search <query>   search for health information
  save [name]      save the session
  load <file>      load a saved session
  clear            start a fresh conversation
  history          show recent exchanges
  exit|quit|bye    leave`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd)
		},
	}
}

func searchCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for health information once and print the ranked results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app, err := wellcoach.New(cfg, func(o *wellcoach.Options) { o.SearchCount = count })
			if err != nil {
				return err
			}
			defer app.Close()
			fmt.Fprintln(cmd.OutOrStdout(), app.Coach.Search(cmd.Context(), strings.Join(args, " ")))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of results")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wellcoach", version)
		},
	}
}

func runChat(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app, err := wellcoach.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if !cfg.SearchEnabled() {
		fmt.Fprintln(cmd.ErrOrStderr(), "SERPER_API_KEY not found. Search functionality will be limited.")
	}
	r := newREPL(app.Coach, cmd.InOrStdin(), cmd.OutOrStdout())
	return r.Run(cmd.Context())
}
