// Package commands implements the CLI commands for cmini.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/cmini/internal/app"
	"go.trai.ch/cmini/internal/build"
)

// CLI represents the command line interface for cmini.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	interval time.Duration

	user uint64
	name string
}

// New creates a new CLI instance with the given app. interval is the default
// period of the serve command.
func New(a *app.App, interval time.Duration) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cmini",
		Short:         "Ergonomic statistics for keyboard layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Describe(),
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		rootCmd:  rootCmd,
		interval: interval,
	}

	rootCmd.PersistentFlags().Uint64VarP(&c.user, "user", "u", 0, "Numeric id of the requesting user")
	rootCmd.PersistentFlags().StringVarP(&c.name, "name", "n", "", "Display name of the requesting user")

	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newRenameCmd())
	rootCmd.AddCommand(c.newAssignCmd())
	rootCmd.AddCommand(c.newLinkCmd())
	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newCorpusCmd())
	rootCmd.AddCommand(c.newLikeCmd())
	rootCmd.AddCommand(c.newUnlikeCmd())
	rootCmd.AddCommand(c.newLikesCmd())
	rootCmd.AddCommand(c.newResyncCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newMaintenanceCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// SetInput replaces stdin for commands that read a layout. Used for testing.
func (c *CLI) SetInput(r io.Reader) {
	c.rootCmd.SetIn(r)
}

func (c *CLI) caller() app.Caller {
	return app.Caller{ID: c.user, Name: c.name}
}

// commit flushes every table and then prints msg.
func (c *CLI) commit(cmd *cobra.Command, msg string) error {
	if err := c.app.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)
	return err
}
