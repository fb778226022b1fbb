package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/pkg/render"
)

func storyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story [command]",
		Short: "List and render stories",
	}
	cmd.AddCommand(storyListCmd(), storyRenderCmd())
	return cmd
}

func loadStories() (*stories.Set, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return stories.Load(cfg.StoriesPath())
}

func storyListCmd() *cobra.Command {
	var component string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadStories()
			if err != nil {
				return err
			}
			list := set.All()
			if component != "" {
				list = set.ForComponent(component)
			}
			fmt.Println()
			for _, st := range list {
				fmt.Printf("  %-24s %-12s %s\n", st.Name, st.Component, st.Title)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&component, "component", "c", "", "Only stories of this component")
	return cmd
}

func storyRenderCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print the server-rendered HTML of a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadStories()
			if err != nil {
				return err
			}
			st, err := set.Get(args[0])
			if err != nil {
				return err
			}
			doc, err := stories.NewDocument(nil)
			if err != nil {
				return err
			}
			el, err := st.Mount(doc)
			if err != nil {
				return err
			}
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			return r.RenderToWriter(cmd.OutOrStdout(), el.VNode())
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	return cmd
}
