package main

import (
	"github.com/spf13/cobra"

	"github.com/yanizio/headmeta/internal/logger"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "headmeta",
		Short: "Build vue-meta head documents from page descriptors",
		Long: `headmeta turns YAML or JSON page descriptors into the document vue-meta
consumes: title, canonical link, description and robots meta, Open Graph and
Twitter card tags, scripts, and root element attributes.

Commands:
  headmeta render FILE...   Render descriptors ("-" reads stdin)
  headmeta hid VALUE...     Print the element identifier for each value`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			_, err := logger.Console(logLevel)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(), newHidCmd())
	return root
}
