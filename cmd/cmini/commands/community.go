package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cmini/internal/ui/style"
)

func (c *CLI) newCorpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus [corpus]",
		Short: "Set your preferred corpus, or list corpora",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names, err := c.app.Corpora()
				if err != nil {
					return err
				}
				current := c.app.Corpus(c.caller())
				var sb strings.Builder
				sb.WriteString("List of Corpora\n")
				for _, name := range names {
					if name == current {
						name = style.Accent.Render(name) + " (current)"
					}
					sb.WriteString(style.Bullet(name))
					sb.WriteString("\n")
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return err
			}

			corpus, err := c.app.SetCorpus(c.caller(), args[0])
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm(fmt.Sprintf("Your corpus preference has been changed to `%s`.", corpus)))
		},
	}
}

func (c *CLI) newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <layout>",
		Short: "Like a layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, n, err := c.app.Like(c.caller(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.commit(cmd, fmt.Sprintf("%s You liked %s. (Now at %s)",
				style.Success.Render(style.Heart), name, likes(n)))
		},
	}
}

func (c *CLI) newUnlikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <layout>",
		Short: "Withdraw your like from a layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, n, err := c.app.Unlike(c.caller(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.commit(cmd, style.Confirm(fmt.Sprintf("You unliked %s. (Now at %s)", name, likes(n))))
		},
	}
}

func (c *CLI) newLikesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "likes",
		Short: "List the layouts you like",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := c.app.Likes(c.caller())
			if len(names) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "You haven't liked any layouts yet.")
				return err
			}
			var sb strings.Builder
			sb.WriteString("Liked layouts:\n")
			for _, name := range names {
				sb.WriteString(style.Bullet(name))
				sb.WriteString("\n")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}

func likes(n int) string {
	if n == 1 {
		return "1 like"
	}
	return fmt.Sprintf("%d likes", n)
}
