package cleanfig

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cleanfig/internal/version"
	"github.com/arthur-debert/cleanfig/pkg/config"
	"github.com/arthur-debert/cleanfig/pkg/linker"
	"github.com/arthur-debert/cleanfig/pkg/logging"
	"github.com/arthur-debert/cleanfig/pkg/paths"
	"github.com/arthur-debert/cleanfig/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		cfg       *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     "cleanfig",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Log.Verbosity = verbosity
			}

			logging.SetupLogger(logging.Options{
				Verbosity: cfg.Log.Verbosity,
				FileLog:   cfg.Log.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.link")

			home, err := paths.GetHomeDirectory()
			if err != nil {
				return err
			}

			results, err := linker.New(linker.Options{DryRun: dryRun}).Run(home)
			logger.Info().
				Bool("dryRun", dryRun).
				Int("entries", len(results)).
				Msg("Link run finished")
			if err != nil {
				return err
			}

			if dryRun {
				printPlan(cmd, results)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newStatusCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func printPlan(cmd *cobra.Command, results []types.LinkResult) {
	out := cmd.OutOrStdout()
	planned := 0
	for _, r := range results {
		if r.Outcome == types.OutcomePlanned {
			fmt.Fprintf(out, MsgDryRunPlanned, r.Destination, r.Source)
			planned++
		}
	}
	if planned == 0 {
		fmt.Fprintln(out, MsgDryRunNothingTo)
	}
	fmt.Fprintln(out, MsgDryRunNotice)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cleanfig version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man [dir]",
		Short:  MsgManShort,
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "CLEANFIG",
				Section: "1",
				Source:  "cleanfig " + version.Version,
				Manual:  "cleanfig manual",
			}
			return doc.GenManTree(rootCmd, header, dir)
		},
	}
}
