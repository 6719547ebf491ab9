package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/cmini/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newResyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resync",
		Short: "Recompute stale cached stats for every layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Resync(cmd.Context())
			if report != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d recomputed, %d skipped, %d failed, %d pruned\n",
					report.Recomputed, report.Skipped, report.Failed, report.Pruned)
			}
			if err != nil {
				return err
			}
			return c.app.Flush()
		},
	}
}

func (c *CLI) newServeCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Resync and flush periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return zerr.With(zerr.New("interval must be positive"), "interval", interval.String())
			}
			return c.app.Serve(cmd.Context(), interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", c.interval, "Time between two resyncs")
	return cmd
}

func (c *CLI) newMaintenanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "maintenance [on|off]",
		Short:     "Show or toggle maintenance mode (privileged users only)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "enable", "disable", "true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				var on bool
				switch args[0] {
				case "on", "enable", "true":
					on = true
				case "off", "disable", "false":
				default:
					return zerr.With(zerr.New("expected on or off"), "mode", args[0])
				}
				if err := c.app.SetMaintenance(c.caller(), on); err != nil {
					return err
				}
				msg := "Maintenance mode disabled"
				if on {
					msg = "Maintenance mode enabled"
				}
				return c.commit(cmd, style.Confirm(msg))
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Maintenance mode: %t\n", c.app.Maintenance())
			return err
		},
	}
}
