package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/headmeta/internal/head"
)

func newHidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hid VALUE...",
		Short: "Print the 8-character element identifier of each value",
		Example: `  headmeta hid og:title          # og:title	0cd7b7c3
  headmeta hid og:image:001 og:image:002`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range args {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", v, head.Hid(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
