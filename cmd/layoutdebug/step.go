package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowkit/retained"
)

func newStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step",
		Short: "Single-step the debug driver over the demo tree, printing each phase's before/after geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := retained.New(retained.WithLogger(loggerFromConfig()))
			if err != nil {
				return fmt.Errorf("construct engine: %w", err)
			}

			root := buildDemoTree()
			engine.EnableDebugMode(root)
			defer engine.DisableDebugMode()

			out := cmd.OutOrStdout()
			for {
				s, ok := engine.NextStep()
				if !ok {
					break
				}
				fmt.Fprintf(out, "%-22s before=(%.0f,%.0f %.0fx%.0f) after=(%.0f,%.0f %.0fx%.0f)\n",
					s.Label,
					s.Before.Position.X, s.Before.Position.Y, s.Before.Size.X, s.Before.Size.Y,
					s.After.Position.X, s.After.Position.Y, s.After.Size.X, s.After.Size.Y,
				)
			}
			return nil
		},
	}
}
