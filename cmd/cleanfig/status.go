package cleanfig

import (
	"os"

	"github.com/arthur-debert/cleanfig/pkg/config"
	"github.com/arthur-debert/cleanfig/pkg/logging"
	"github.com/arthur-debert/cleanfig/pkg/paths"
	"github.com/arthur-debert/cleanfig/pkg/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(cfg func() *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := status.ParseFormat(output)
			if err != nil {
				return err
			}

			home, err := paths.GetHomeDirectory()
			if err != nil {
				return err
			}

			report, err := status.NewChecker(nil).Check(home)
			if err != nil {
				return err
			}

			return status.Render(cmd.OutOrStdout(), report, format, useColor(cmd, cfg()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", MsgFlagOutput)
	return cmd
}

// useColor resolves output.color against the terminal and NO_COLOR
func useColor(cmd *cobra.Command, cfg *config.Config) bool {
	mode := config.ColorAuto
	if cfg != nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return logging.IsTerminal(cmd.OutOrStdout())
}
