package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/playground"
	"github.com/vango-dev/elements/internal/tui"
)

func playCmd() *cobra.Command {
	var animate bool

	cmd := &cobra.Command{
		Use:   "play <story>",
		Short: "Interact with a story in the terminal",
		Long: `Mount a story and drive it from the keyboard.

Tab and shift+tab select an element; enter, space, arrows, home and end
are pressed on it; c clicks it; f finishes running transitions; r
restarts the story.

Examples:
  elements play tabs-vertical
  elements play collapsible-default --animate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("E160").
					WithDetail("play needs an interactive terminal").
					WithSuggestion("Use 'elements story render " + args[0] + "' for non-interactive output")
			}
			set, err := loadStories()
			if err != nil {
				return err
			}
			st, err := set.Get(args[0])
			if err != nil {
				return err
			}
			// Logs would corrupt the alternate screen.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			sess, err := playground.NewSession(st, animate, nil, logger)
			if err != nil {
				return err
			}
			return tui.Run(sess)
		},
	}

	cmd.Flags().BoolVar(&animate, "animate", false, "Leave transitions running until f finishes them")
	return cmd
}
