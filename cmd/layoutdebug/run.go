package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowkit/retained"
	"github.com/flowkit/retained/fixtures"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one layout pass over the demo tree and print the resulting geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := retained.New(retained.WithLogger(loggerFromConfig()))
			if err != nil {
				return fmt.Errorf("construct engine: %w", err)
			}

			root := buildDemoTree()
			engine.ProcessInstance(root)
			printTree(cmd, root, 0)
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, b *fixtures.Box, depth int) {
	fmt.Fprintf(cmd.OutOrStdout(), "%*s(%.0f,%.0f) %.0fx%.0f\n", depth*2, "", b.X(), b.Y(), b.Width(), b.Height())
	for _, c := range b.Children() {
		printTree(cmd, c.(*fixtures.Box), depth+1)
	}
}
