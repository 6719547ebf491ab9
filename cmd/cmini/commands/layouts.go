package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cmini/internal/engine/render"
	"go.trai.ch/cmini/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <layout> [file|-]",
		Short: "Contribute a new layout",
		Long: "Contribute a new layout. The key matrix is read from file, or from stdin when\n" +
			"file is omitted or `-`. Leading whitespace of each row decides the board shape.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := readMatrix(cmd, args[1:])
			if err != nil {
				return err
			}
			l, err := c.app.Add(c.caller(), args[0], matrix)
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm("Success!")+"\n"+style.Card.Render(render.Matrix(l)))
		},
	}
}

func readMatrix(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", zerr.Wrap(err, "failed to read layout from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read layout file"), "path", args[0])
	}
	return string(data), nil
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	var sudo bool
	cmd := &cobra.Command{
		Use:   "remove <layout>",
		Short: "Remove one of your layouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.app.Remove(c.caller(), args[0], sudo)
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm(fmt.Sprintf("`%s` has been removed", l.Name)))
		},
	}
	cmd.Flags().BoolVar(&sudo, "sudo", false, "Override ownership (privileged users only)")
	return cmd
}

func (c *CLI) newRenameCmd() *cobra.Command {
	var sudo bool
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename one of your layouts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.app.Rename(c.caller(), args[0], args[1], sudo)
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm(fmt.Sprintf("`%s` has been renamed to `%s`", strings.ToLower(args[0]), l.Name)))
		},
	}
	cmd.Flags().BoolVar(&sudo, "sudo", false, "Override ownership (privileged users only)")
	return cmd
}

func (c *CLI) newAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <layout> <author>",
		Short: "Assign a layout to a new author (privileged users only)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, author, err := c.app.Assign(c.caller(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm(fmt.Sprintf("`%s` has been assigned to `%s`", l.Name, author)))
		},
	}
}

func (c *CLI) newLinkCmd() *cobra.Command {
	var sudo bool
	cmd := &cobra.Command{
		Use:   "link <layout> [url]",
		Short: "Attach an external link to one of your layouts",
		Long:  "Attach an external link to one of your layouts. Omitting url removes the link.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 2 {
				url = args[1]
			}
			if err := c.app.SetLink(c.caller(), args[0], url, sudo); err != nil {
				return err
			}
			msg := fmt.Sprintf("`%s` now links to %s", strings.ToLower(args[0]), url)
			if url == "" {
				msg = fmt.Sprintf("`%s` no longer has a link", strings.ToLower(args[0]))
			}
			return c.commit(cmd, style.Confirm(msg))
		},
	}
	cmd.Flags().BoolVar(&sudo, "sudo", false, "Override ownership (privileged users only)")
	return cmd
}

func (c *CLI) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <layout>",
		Short: "See the stats of a layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.app.View(c.caller(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), style.Card.Render(strings.TrimRight(v.String(), "\n")))
			return err
		},
	}
}

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <layout> [corpus]",
		Short: "Print cached stats without computing anything",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus := ""
			if len(args) == 2 {
				corpus = args[1]
			}
			stat, err := c.app.Stats(c.caller(), args[0], corpus)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Stats(stat, nil))
			return err
		},
	}
}
